package lang

import (
	"errors"
	"fmt"
)

// ErrNoFrontend is returned when a variant resolves to a frontend that was
// not supplied when the dispatch table was built.
var ErrNoFrontend = errors.New("no frontend registered")

// Frontends supplies the capability pairs backing the dispatch table.
// Any entry may be nil; resolving a variant served by a nil entry fails
// with ErrNoFrontend.
type Frontends struct {
	// Script serves js, jsx, ts, tsx and the embedding variants after
	// extraction.
	Script Frontend

	// JSON serves structured-data blocks.
	JSON Frontend

	// CSS serves stylesheet blocks.
	CSS Frontend
}

// Dispatch is the fixed mapping from language variants to frontends.
// It is built once and read-only afterward.
type Dispatch struct {
	frontends Frontends
}

// NewDispatch builds the dispatch table from the given frontends.
func NewDispatch(frontends Frontends) *Dispatch {
	return &Dispatch{frontends: frontends}
}

// Resolve returns the frontend serving the given variant. Embedding
// variants resolve to the script frontend; callers are expected to run
// Extract first so the frontend receives a concrete script variant.
func (d *Dispatch) Resolve(variant Variant) (Frontend, error) {
	var fe Frontend

	switch variant {
	case VariantJS, VariantJSX, VariantTS, VariantTSX,
		VariantSvelte, VariantAstro, VariantVue:
		fe = d.frontends.Script
	case VariantJSON:
		fe = d.frontends.JSON
	case VariantCSS:
		fe = d.frontends.CSS
	default:
		return nil, fmt.Errorf("resolve frontend: unknown variant %d", variant)
	}

	if fe == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoFrontend, variant)
	}
	return fe, nil
}
