package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/docgen"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

func TestFormatDiagnostic(t *testing.T) {
	styles := pretty.NewStyles(false)
	d := diag.Diagnostic{
		Category:   "lint/suspicious/noDuplicateObjectKeys",
		Severity:   diag.SeverityError,
		Message:    `The key "a" was already declared.`,
		FilePath:   "code-block.json",
		Span:       diag.Span{StartLine: 1, StartColumn: 10, EndLine: 1, EndColumn: 13},
		SourceCode: `{"a": 1, "a": 2}`,
		Suggestions: []diag.CodeSuggestion{
			{Message: "Remove the duplicated member."},
		},
	}

	out := styles.FormatDiagnostic(&d)
	assert.Contains(t, out, "code-block.json:1:10")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, `The key "a" was already declared.`)
	assert.Contains(t, out, "(lint/suspicious/noDuplicateObjectKeys)")
	assert.Contains(t, out, `{"a": 1, "a": 2}`)
	assert.Contains(t, out, "Suggestion: Remove the duplicated member.")
}

func TestFormatDiagnostic_NoSpan(t *testing.T) {
	styles := pretty.NewStyles(false)
	d := diag.Diagnostic{
		Category: "parse",
		Severity: diag.SeverityError,
		Message:  "unexpected end of input",
		FilePath: "code-block.json",
	}

	out := styles.FormatDiagnostic(&d)
	assert.Contains(t, out, "code-block.json  error")
	assert.NotContains(t, out, "^")
}

func TestFormatFailureReport(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatFailureReport(nil))

	errs := []docgen.RuleError{
		{Rule: "noDuplicateObjectKeys", Err: errors.New("example expected a diagnostic but the analysis returned none")},
	}
	out := styles.FormatFailureReport(errs)
	assert.Contains(t, out, "1 rule failed to generate:")
	assert.Contains(t, out, "noDuplicateObjectKeys")
	assert.Contains(t, out, "returned none")
}

func TestFormatRunSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	ok := &docgen.Output{
		Pages:     []docgen.Page{{FileName: "a.md"}, {FileName: "b.md"}},
		RuleCount: 2,
		Errors:    &docgen.ErrorList{},
	}
	assert.Equal(t, "Generated 2 pages for 2 rules\n", styles.FormatRunSummary(ok))

	failed := &docgen.Output{
		Pages:     []docgen.Page{{FileName: "a.md"}},
		RuleCount: 2,
		Errors:    &docgen.ErrorList{},
	}
	failed.Errors.Add("broken", errors.New("boom"))
	assert.Equal(t, "Generated 1 page for 2 rules, 1 failed\n", styles.FormatRunSummary(failed))
}

func TestFormatRule(t *testing.T) {
	styles := pretty.NewStyles(false)

	meta := rules.Metadata{
		Group:       "suspicious",
		Name:        "noDuplicateObjectKeys",
		Version:     "1.0.0",
		Recommended: true,
		FixKind:     rules.FixUnsafe,
	}
	out := styles.FormatRule(meta)
	assert.Contains(t, out, "noDuplicateObjectKeys")
	assert.Contains(t, out, "recommended")
	assert.Contains(t, out, "fix:unsafe")
	assert.Contains(t, out, "v1.0.0")

	header := styles.FormatGroupHeader("suspicious", 1)
	assert.Contains(t, header, "suspicious (1 rule)")
}
