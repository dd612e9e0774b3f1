package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/rules"
)

// FormatGroupHeader formats a rule group header for the rules listing.
func (s *Styles) FormatGroupHeader(group string, count int) string {
	ruleWord := "rules"
	if count == 1 {
		ruleWord = "rule"
	}
	return s.RuleGroup.Render(group) + s.Dim.Render(fmt.Sprintf(" (%d %s)", count, ruleWord)) + "\n"
}

// FormatRule formats one registered rule for the rules listing.
func (s *Styles) FormatRule(meta rules.Metadata) string {
	var badges []string
	if meta.Recommended {
		badges = append(badges, s.RuleBadge.Render("recommended"))
	}
	if meta.FixKind != rules.FixNone {
		badges = append(badges, s.RuleBadge.Render("fix:"+meta.FixKind.String()))
	}
	if !meta.IsReleased() {
		badges = append(badges, s.Dim.Render("unreleased"))
	} else {
		badges = append(badges, s.Dim.Render("v"+meta.Version))
	}

	line := "  " + s.RuleName.Render(meta.Name) + "  " + s.Dim.Render(meta.Language.String())
	if len(badges) > 0 {
		line += "  " + strings.Join(badges, " ")
	}
	return line + "\n"
}
