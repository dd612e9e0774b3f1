package jsonlang

import (
	"context"
	"fmt"
	"sync"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/lang"
)

// CheckFunc inspects a parsed document and reports signals for one rule.
// The report callback returns the visitor's flow decision; a check must
// stop reporting and return when the flow carries a stop.
type CheckFunc func(doc *Document, report func(lang.Signal) lang.Flow) error

// Frontend implements lang.Frontend for structured JSON data.
type Frontend struct {
	mu     sync.RWMutex
	checks map[lang.Filter]CheckFunc
}

// NewFrontend creates a JSON frontend with no checks registered.
func NewFrontend() *Frontend {
	return &Frontend{
		checks: make(map[lang.Filter]CheckFunc),
	}
}

// RegisterCheck installs the check implementing (group, rule).
func (f *Frontend) RegisterCheck(group, rule string, check CheckFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks[lang.Filter{Group: group, Rule: rule}] = check
}

// parseResult adapts a parse outcome to lang.ParseResult.
type parseResult struct {
	doc  *Document
	errs []diag.Diagnostic
}

func (r *parseResult) HasErrors() bool { return len(r.errs) > 0 }

func (r *parseResult) Diagnostics() []diag.Diagnostic { return r.errs }

func (r *parseResult) Tree() any {
	if r.HasErrors() {
		return nil
	}
	return r.doc
}

// Parse parses a snippet as JSON.
func (f *Frontend) Parse(ctx context.Context, snippet string, variant lang.Variant) (lang.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	if variant != lang.VariantJSON {
		return nil, fmt.Errorf("json frontend cannot parse %s", variant)
	}

	doc, derr := ParseDocument(snippet)
	if derr != nil {
		return &parseResult{errs: []diag.Diagnostic{*derr}}, nil
	}
	return &parseResult{doc: doc}, nil
}

// Analyze runs the single check selected by filter. A rule with no
// registered check produces no signals, mirroring an analysis filter that
// matches nothing.
func (f *Frontend) Analyze(ctx context.Context, tree any, filter lang.Filter, _ lang.Options, visit lang.Visitor) ([]diag.Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze cancelled: %w", err)
	}

	doc, ok := tree.(*Document)
	if !ok {
		return nil, fmt.Errorf("json frontend: unexpected tree type %T", tree)
	}

	f.mu.RLock()
	check := f.checks[filter]
	f.mu.RUnlock()
	if check == nil {
		return nil, nil
	}

	var stopErr error
	err := check(doc, func(signal lang.Signal) lang.Flow {
		flow := visit(signal)
		if flow.Stopped() {
			stopErr = flow.Err()
		}
		return flow
	})
	if err != nil {
		return nil, fmt.Errorf("analyze %s/%s: %w", filter.Group, filter.Rule, err)
	}
	if stopErr != nil {
		return nil, stopErr
	}

	return nil, nil
}

// WalkObjects visits every object value in the tree in source order.
func WalkObjects(root *Value, visit func(*Value)) {
	if root == nil {
		return
	}

	switch root.Kind {
	case KindObject:
		visit(root)
		for _, m := range root.Members {
			WalkObjects(m.Value, visit)
		}
	case KindArray:
		for _, el := range root.Elements {
			WalkObjects(el, visit)
		}
	default:
	}
}
