package diag

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/fix"
)

// Renderer writes the verbose human-readable form of a diagnostic.
// The same layout is used for transcript fragments embedded in generated
// documentation (HTML-escaped) and for console dumps (plain text).
type Renderer struct {
	// EscapeHTML enables HTML escaping of all emitted text.
	EscapeHTML bool
}

// NewHTMLRenderer returns a renderer for documentation transcripts.
func NewHTMLRenderer() *Renderer {
	return &Renderer{EscapeHTML: true}
}

// NewTextRenderer returns a renderer for console output.
func NewTextRenderer() *Renderer {
	return &Renderer{EscapeHTML: false}
}

// Render writes the verbose form of the diagnostic:
//
//	path:line:col severity[category]: message
//
//	  > 2 | {"a": 1, "a": 2}
//	    |          ^^^
//
//	  i Suggested fix: Remove the duplicate key.
//	    {"a": 1}
func (r *Renderer) Render(w io.Writer, d *Diagnostic) error {
	if err := r.renderHeader(w, d); err != nil {
		return err
	}
	if err := r.renderExcerpt(w, d); err != nil {
		return err
	}
	return r.renderSuggestions(w, d)
}

// RenderString renders the diagnostic into a string.
func (r *Renderer) RenderString(d *Diagnostic) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) renderHeader(w io.Writer, d *Diagnostic) error {
	location := d.FilePath
	if !d.Span.IsZero() {
		location = fmt.Sprintf("%s:%d:%d", d.FilePath, d.Span.StartLine, d.Span.StartColumn)
	}

	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityWarning)
	}

	_, err := fmt.Fprintf(w, "%s %s[%s]: %s\n\n",
		r.escape(location), severity, r.escape(d.Category), r.escape(d.Message))
	return err
}

// renderExcerpt writes the source line the diagnostic points at, with a
// caret run underneath covering the reported columns.
func (r *Renderer) renderExcerpt(w io.Writer, d *Diagnostic) error {
	if d.SourceCode == "" || d.Span.IsZero() {
		return nil
	}

	lines := strings.Split(d.SourceCode, "\n")
	if d.Span.StartLine < 1 || d.Span.StartLine > len(lines) {
		return nil
	}
	line := lines[d.Span.StartLine-1]

	if _, err := fmt.Fprintf(w, "  > %d | %s\n", d.Span.StartLine, r.escape(line)); err != nil {
		return err
	}

	width := 1
	if d.Span.EndLine == d.Span.StartLine && d.Span.EndColumn > d.Span.StartColumn {
		width = d.Span.EndColumn - d.Span.StartColumn
	}
	column := d.Span.StartColumn
	if column < 1 {
		column = 1
	}

	gutter := strings.Repeat(" ", numberWidth(d.Span.StartLine))
	padding := strings.Repeat(" ", column-1)
	carets := strings.Repeat("^", width)

	_, err := fmt.Fprintf(w, "    %s | %s%s\n\n", gutter, padding, carets)
	return err
}

func (r *Renderer) renderSuggestions(w io.Writer, d *Diagnostic) error {
	for _, s := range d.Suggestions {
		if _, err := fmt.Fprintf(w, "  i Suggested fix: %s\n", r.escape(s.Message)); err != nil {
			return err
		}

		preview, err := fix.Apply([]byte(d.SourceCode), s.Edits)
		if err != nil {
			// Suggestions with invalid edits are rendered without a preview.
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		for _, line := range strings.Split(strings.TrimRight(string(preview), "\n"), "\n") {
			if _, err := fmt.Fprintf(w, "    %s\n", r.escape(line)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) escape(s string) string {
	if r.EscapeHTML {
		return html.EscapeString(s)
	}
	return s
}

func numberWidth(n int) int {
	width := 1
	for n >= 10 {
		n /= 10
		width++
	}
	return width
}
