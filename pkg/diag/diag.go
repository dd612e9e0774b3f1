// Package diag defines the diagnostic value produced when executing a
// documentation example, and renderers for its verbose human-readable form.
package diag

import (
	"strings"

	"github.com/yaklabco/ruledoc/pkg/fix"
)

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Span locates a diagnostic within a snippet using 1-based positions.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsZero returns true if the span carries no position information.
func (s Span) IsZero() bool {
	return s == Span{}
}

// CodeSuggestion is a suggested rewrite of the snippet attached to a
// diagnostic. Edits are byte offsets into the snippet source.
type CodeSuggestion struct {
	// Message describes the suggestion (e.g. "Remove the duplicate key.").
	Message string

	// Edits are the text replacements that realize the suggestion.
	Edits []fix.TextEdit
}

// Diagnostic represents a single issue reported while parsing or analyzing
// a documentation code example. It is owned by the execution harness for
// the duration of one code block and discarded after rendering.
type Diagnostic struct {
	// Category is the fully qualified rule category, e.g.
	// "lint/suspicious/noDuplicateObjectKeys" or "parse".
	Category string

	// Severity is the resolved severity for this diagnostic.
	Severity Severity

	// Message is the human-readable description of the issue.
	Message string

	// FilePath is the synthetic path of the snippet being checked,
	// used for rendering only.
	FilePath string

	// Span locates the issue within the snippet.
	Span Span

	// SourceCode is the full snippet source, used to render an excerpt.
	SourceCode string

	// Suggestions holds suggested fixes in the order they were attached.
	Suggestions []CodeSuggestion
}

// ExcerptLine returns the source line the diagnostic starts on, or an
// empty string when no span or source is available.
func (d *Diagnostic) ExcerptLine() string {
	if d.Span.IsZero() || d.SourceCode == "" {
		return ""
	}

	lines := strings.Split(d.SourceCode, "\n")
	if d.Span.StartLine < 1 || d.Span.StartLine > len(lines) {
		return ""
	}
	return lines[d.Span.StartLine-1]
}

// HasSuggestions returns true if any suggested fix is attached.
func (d *Diagnostic) HasSuggestions() bool {
	return len(d.Suggestions) > 0
}

// WithSeverity returns a copy of the diagnostic with the given severity.
func (d Diagnostic) WithSeverity(sev Severity) Diagnostic {
	d.Severity = sev
	return d
}

// WithFile returns a copy of the diagnostic bound to the given file path
// and snippet source.
func (d Diagnostic) WithFile(path, source string) Diagnostic {
	d.FilePath = path
	d.SourceCode = source
	return d
}
