// Package rules defines lint rule metadata and the registry the
// documentation generator reads it from.
package rules

import (
	"strings"
	"unicode"

	"github.com/yaklabco/ruledoc/pkg/lang"
)

// FixKind declares what kind of code fix a rule offers, if any.
type FixKind uint8

const (
	// FixNone means the rule offers no code fix.
	FixNone FixKind = iota

	// FixSafe means the rule's fix can be applied without review.
	FixSafe

	// FixUnsafe means the rule's fix may change program behavior.
	FixUnsafe
)

// String returns a short name for the fix kind.
func (k FixKind) String() string {
	switch k {
	case FixSafe:
		return "safe"
	case FixUnsafe:
		return "unsafe"
	default:
		return "none"
	}
}

// VersionNext marks rules that are not yet released. Such rules are not
// documented.
const VersionNext = "next"

// Metadata describes one lint rule. It is constructed once before
// documentation generation runs and never mutated.
type Metadata struct {
	// Group is the rule group, e.g. "suspicious" or "nursery".
	Group string

	// Name is the camel-case rule name, e.g. "noDuplicateObjectKeys".
	Name string

	// Version is the release the rule first shipped in, or VersionNext.
	Version string

	// Recommended marks the rule as part of the recommended set.
	Recommended bool

	// FixKind declares the rule's fix capability.
	FixKind FixKind

	// Language is the language the rule applies to.
	Language lang.Variant

	// Sources lists rules in other linters this rule derives from.
	Sources []SourceRef

	// SourceKind tells whether Sources share logic or merely inspired
	// this rule.
	SourceKind SourceKind

	// Docs is the raw markdown documentation text for the rule,
	// including executable examples.
	Docs string
}

// Category returns the fully qualified diagnostic category for the rule.
func (m Metadata) Category() string {
	return "lint/" + m.Group + "/" + m.Name
}

// IsReleased returns false for rules whose version marker indicates they
// have not shipped yet.
func (m Metadata) IsReleased() bool {
	return m.Version != VersionNext
}

// KebabName returns the rule name in kebab case, used for page file names
// and URLs (e.g. "noDuplicateObjectKeys" -> "no-duplicate-object-keys").
func (m Metadata) KebabName() string {
	return KebabCase(m.Name)
}

// KebabCase converts a camel-case identifier to kebab case.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
