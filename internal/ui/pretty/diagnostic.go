package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/diag"
)

// FormatDiagnostic formats a single diagnostic for terminal output. It is
// used for the failure-path dumps when an example produces diagnostics the
// directive did not promise.
func (s *Styles) FormatDiagnostic(d *diag.Diagnostic) string {
	var builder strings.Builder

	location := s.FilePath.Render(d.FilePath)
	if !d.Span.IsZero() {
		location = fmt.Sprintf("%s:%d:%d", location, d.Span.StartLine, d.Span.StartColumn)
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(d.Severity),
		s.Message.Render(d.Message),
		s.Category.Render("("+d.Category+")"),
	))

	if line := d.ExcerptLine(); line != "" {
		builder.WriteString(s.formatSourceContext(line, d.Span.StartColumn))
	}

	for _, suggestion := range d.Suggestions {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(suggestion.Message) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev diag.Severity) string {
	switch sev {
	case diag.SeverityError:
		return s.Error.Render("error")
	case diag.SeverityWarning:
		return s.Warning.Render("warning")
	case diag.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// formatSourceContext formats the source line with a caret marker.
func (s *Styles) formatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
