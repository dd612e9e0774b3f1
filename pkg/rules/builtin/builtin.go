// Package builtin ships the JSON lint rules that come with ruledoc, each
// carrying executable documentation. Registering them gives a working
// generate command out of the box and keeps the whole pipeline exercised by
// real rules.
package builtin

import (
	"fmt"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

// ruleDef couples a rule's metadata with its check and default severity.
type ruleDef struct {
	meta     rules.Metadata
	severity diag.Severity
	check    jsonlang.CheckFunc
}

func all() []ruleDef {
	return []ruleDef{
		noDuplicateObjectKeys,
		noEmptyMemberNames,
		useSortedKeys,
	}
}

// Register installs every built-in rule into the registry and its check
// into the JSON frontend.
func Register(registry *rules.Registry, frontend *jsonlang.Frontend) error {
	for _, def := range all() {
		if err := registry.Register(def.meta); err != nil {
			return fmt.Errorf("register builtin rule: %w", err)
		}
		frontend.RegisterCheck(def.meta.Group, def.meta.Name, def.check)
	}
	return nil
}

// ApplyDefaultSeverities maps every built-in rule category to its default
// severity. Explicit settings loaded from a project file take precedence
// when applied afterwards.
func ApplyDefaultSeverities(st *settings.Settings) error {
	for _, def := range all() {
		if err := st.Set(def.meta.Category(), def.severity); err != nil {
			return fmt.Errorf("default severity: %w", err)
		}
	}
	return nil
}
