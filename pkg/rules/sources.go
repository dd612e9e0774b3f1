package rules

// SourceKind tells how a rule relates to its sources in other linters.
type SourceKind uint8

const (
	// SourceInspired means the rule was inspired by the source but does
	// not share its exact logic.
	SourceInspired SourceKind = iota

	// SourceSameLogic means the rule implements the same logic as the
	// source.
	SourceSameLogic
)

// Label returns the prose prefix used when rendering a source link.
func (k SourceKind) Label() string {
	if k == SourceSameLogic {
		return "Same as"
	}
	return "Inspired from"
}

// SourceRef identifies a rule in another linter that this rule derives from.
type SourceRef struct {
	// Linter is the originating linter, e.g. "eslint".
	Linter string

	// Rule is the rule name within that linter, e.g. "no-dupe-keys".
	Rule string
}

// NamespacedName returns the linter-qualified rule name, e.g.
// "eslint/no-dupe-keys". Plain eslint rules keep their bare name, matching
// how they are written in eslint configurations.
func (s SourceRef) NamespacedName() string {
	if s.Linter == "eslint" {
		return s.Rule
	}
	return s.Linter + "/" + s.Rule
}

// URL returns the documentation URL of the source rule. Unknown linters
// yield an empty string and render without a link target.
func (s SourceRef) URL() string {
	switch s.Linter {
	case "eslint":
		return "https://eslint.org/docs/latest/rules/" + s.Rule
	case "typescript-eslint":
		return "https://typescript-eslint.io/rules/" + s.Rule
	case "eslint-plugin-react":
		return "https://github.com/jsx-eslint/eslint-plugin-react/blob/master/docs/rules/" + s.Rule + ".md"
	case "eslint-plugin-jsx-a11y":
		return "https://github.com/jsx-eslint/eslint-plugin-jsx-a11y/blob/main/docs/rules/" + s.Rule + ".md"
	case "eslint-plugin-unicorn":
		return "https://github.com/sindresorhus/eslint-plugin-unicorn/blob/main/docs/rules/" + s.Rule + ".md"
	case "stylelint":
		return "https://stylelint.io/user-guide/rules/" + s.Rule
	default:
		return ""
	}
}
