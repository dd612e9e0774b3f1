package lang

import (
	"context"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/fix"
)

// Filter restricts analysis to a single rule. Example execution never runs
// the full rule set, only the rule being documented, so cross-rule
// interference cannot corrupt a snippet's expected diagnostic count.
type Filter struct {
	Group string
	Rule  string
}

// Options carries analyzer configuration threaded through the harness.
type Options struct {
	// JSXRuntime selects how JSX is assumed to be transformed.
	// Empty means the default transparent runtime.
	JSXRuntime string
}

// Action is a code action attached to an analyzer signal.
type Action struct {
	// Message describes the action.
	Message string

	// Suppression is true for actions that merely suppress the rule;
	// these never count as the rule offering a fix.
	Suppression bool

	// Edits are the snippet rewrites realizing the action.
	Edits []fix.TextEdit
}

// Signal is one candidate violation reported by an analyzer before severity
// resolution and fix attachment.
type Signal struct {
	// Diagnostic is the reported issue, without severity or file binding.
	Diagnostic diag.Diagnostic

	// Actions holds code actions proposed for this signal, in order.
	Actions []Action
}

// Flow is the cooperative result returned by an analyzer visitor. The
// driving loop propagates a stop explicitly instead of relying on panics
// or other non-local control transfer.
type Flow struct {
	stop bool
	err  error
}

// Continue tells the analyzer to keep visiting signals.
func Continue() Flow {
	return Flow{}
}

// Stop tells the analyzer to halt traversal and propagate err.
func Stop(err error) Flow {
	return Flow{stop: true, err: err}
}

// Stopped returns true if the visitor requested a halt.
func (f Flow) Stopped() bool {
	return f.stop
}

// Err returns the error carried by a stop, or nil.
func (f Flow) Err() error {
	return f.err
}

// Visitor receives one signal per analyzer match.
type Visitor func(Signal) Flow

// ParseResult is the outcome of parsing a snippet. Either the snippet parsed
// cleanly and Tree returns a frontend-specific syntax tree, or HasErrors is
// true and Diagnostics returns the parser's positioned errors.
type ParseResult interface {
	// HasErrors returns true if parsing produced any error.
	HasErrors() bool

	// Diagnostics returns parse errors in source order.
	Diagnostics() []diag.Diagnostic

	// Tree returns the frontend-specific syntax tree, or nil on error.
	Tree() any
}

// Frontend is the parse-and-analyze capability pair for one language family.
// Implementations are external to the documentation engine; it consumes
// them only through this contract.
type Frontend interface {
	// Parse parses a snippet as the given variant.
	Parse(ctx context.Context, snippet string, variant Variant) (ParseResult, error)

	// Analyze runs the single rule selected by filter over the parsed tree,
	// invoking visit once per signal. It returns diagnostics deferred past
	// traversal and a non-nil error if the visitor stopped the analysis or
	// the analyzer itself failed.
	Analyze(ctx context.Context, tree any, filter Filter, opts Options, visit Visitor) ([]diag.Diagnostic, error)
}
