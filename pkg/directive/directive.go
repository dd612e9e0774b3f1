// Package directive parses the info string of a fenced code block into the
// test configuration for that documentation example.
package directive

import (
	"strings"

	"github.com/yaklabco/ruledoc/pkg/lang"
)

// Keyword tokens recognized in addition to language tokens. They configure
// the example test and never appear in rendered output.
const (
	keywordExpectDiagnostic = "expect_diagnostic"
	keywordIgnore           = "ignore"
)

// Directive is the parsed test configuration of one code block. It is built
// once per block and immutable afterward.
type Directive struct {
	// Variant is the resolved language, valid only when Known is true.
	Variant lang.Variant

	// Known is true when the info string named a recognized language.
	Known bool

	// Foreign is the verbatim language token for unrecognized languages.
	// Empty for blocks with no info string.
	Foreign string

	// ExpectDiagnostic requires the example to produce exactly one
	// diagnostic. Without it the example must produce none.
	ExpectDiagnostic bool

	// Ignore skips parsing and analysis for this block entirely.
	Ignore bool
}

// Parse tokenizes an info string and folds the tokens into a Directive.
// It is a total function: every input yields a value, never an error.
//
// Tokens are split on commas, spaces and tabs; empty tokens are discarded.
// Each recognized language token overwrites the current language, so the
// final language token takes precedence when several appear. (Most directive
// grammars treat the first match as authoritative; this grammar
// deliberately keeps the opposite, long-standing behavior.) The keyword
// tokens set their flag and never clear it. An unrecognized token marks the
// block as foreign and forces Ignore, overriding any recognized language
// seen earlier.
func Parse(info string) Directive {
	var d Directive

	tokens := strings.FieldsFunc(info, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	for _, token := range tokens {
		switch token {
		case "cjs":
			d.setLanguage(lang.VariantJS)
		case "js", "mjs", "jsx":
			d.setLanguage(lang.VariantJSX)
		case "ts", "mts", "cts":
			d.setLanguage(lang.VariantTS)
		case "tsx":
			d.setLanguage(lang.VariantTSX)
		case "svelte":
			d.setLanguage(lang.VariantSvelte)
		case "astro":
			d.setLanguage(lang.VariantAstro)
		case "vue":
			d.setLanguage(lang.VariantVue)
		case "json":
			d.setLanguage(lang.VariantJSON)
		case "css":
			d.setLanguage(lang.VariantCSS)
		case keywordExpectDiagnostic:
			d.ExpectDiagnostic = true
		case keywordIgnore:
			d.Ignore = true
		default:
			// Unknown tokens mark the block as a foreign language and its
			// example as documentation-only.
			d.Variant = 0
			d.Known = false
			d.Foreign = token
			d.Ignore = true
		}
	}

	return d
}

func (d *Directive) setLanguage(v lang.Variant) {
	d.Variant = v
	d.Known = true
	d.Foreign = ""
}

// HasInfo returns true if the block carried any info string content.
func (d Directive) HasInfo() bool {
	return d.Known || d.Foreign != ""
}

// FenceTag returns the language tag to write on the rendered fence: the
// tag derived from the resolved variant for known languages, the verbatim
// token for foreign ones, empty for untyped blocks.
func (d Directive) FenceTag() string {
	if d.Known {
		return d.Variant.FenceTag()
	}
	return d.Foreign
}
