package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/docgen"
)

// FormatFailureReport formats the aggregate deferred-error list produced by
// a documentation run, one entry per broken rule.
func (s *Styles) FormatFailureReport(errs []docgen.RuleError) string {
	if len(errs) == 0 {
		return ""
	}

	var builder strings.Builder
	ruleWord := "rules"
	if len(errs) == 1 {
		ruleWord = "rule"
	}
	builder.WriteString(s.Failure.Render(fmt.Sprintf("%d %s failed to generate:", len(errs), ruleWord)) + "\n")

	for _, re := range errs {
		builder.WriteString("  " + s.RuleName.Render(re.Rule) + "  " + s.Message.Render(re.Err.Error()) + "\n")
	}

	return builder.String()
}

// FormatRunSummary formats the one-line outcome of a documentation run.
// Example: "Generated 12 pages for 14 rules, 2 failed".
func (s *Styles) FormatRunSummary(out *docgen.Output) string {
	pageWord := "pages"
	if len(out.Pages) == 1 {
		pageWord = "page"
	}

	msg := fmt.Sprintf("Generated %d %s for %d rules", len(out.Pages), pageWord, out.RuleCount)
	if out.Errors.Empty() {
		return s.Success.Render(msg) + "\n"
	}

	return s.Failure.Render(fmt.Sprintf("%s, %d failed", msg, out.Errors.Len())) + "\n"
}
