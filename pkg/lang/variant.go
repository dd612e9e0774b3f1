// Package lang defines the closed set of languages a documentation code
// block can be checked as, and the dispatch table that maps each variant to
// the frontend capable of parsing and analyzing it.
package lang

//go:generate stringer -type=Variant -trimprefix=Variant

// Variant identifies the language of a code example. The set is closed:
// adding a variant requires extending the dispatch table, which the compiler
// enforces through exhaustive switches.
type Variant uint8

const (
	// VariantJS is plain JavaScript in script (CommonJS) mode.
	VariantJS Variant = iota

	// VariantJSX is JavaScript with JSX syntax enabled.
	VariantJSX

	// VariantTS is TypeScript.
	VariantTS

	// VariantTSX is TypeScript with JSX syntax enabled.
	VariantTSX

	// VariantSvelte is a Svelte component; scripts are extracted before analysis.
	VariantSvelte

	// VariantAstro is an Astro component; front matter is extracted before analysis.
	VariantAstro

	// VariantVue is a Vue single-file component; scripts are extracted before analysis.
	VariantVue

	// VariantJSON is structured JSON data.
	VariantJSON

	// VariantCSS is a stylesheet.
	VariantCSS
)

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantJS:
		return "js"
	case VariantJSX:
		return "jsx"
	case VariantTS:
		return "ts"
	case VariantTSX:
		return "tsx"
	case VariantSvelte:
		return "svelte"
	case VariantAstro:
		return "astro"
	case VariantVue:
		return "vue"
	case VariantJSON:
		return "json"
	case VariantCSS:
		return "css"
	default:
		return "unknown"
	}
}

// FenceTag returns the language tag written on rendered code fences.
// The tag is derived from the variant, never copied from the source info
// string, so directive keywords cannot leak into generated documentation
// and embedded variants render under their own tag.
func (v Variant) FenceTag() string {
	return v.String()
}

// IsEmbedding returns true for host document formats whose snippets must be
// extracted into a concrete script variant before parsing.
func (v Variant) IsEmbedding() bool {
	switch v {
	case VariantSvelte, VariantAstro, VariantVue:
		return true
	default:
		return false
	}
}

// IsScript returns true for variants served by the script frontend,
// including embeddings (which extract to a script variant).
func (v Variant) IsScript() bool {
	switch v {
	case VariantJS, VariantJSX, VariantTS, VariantTSX,
		VariantSvelte, VariantAstro, VariantVue:
		return true
	default:
		return false
	}
}

// HasJSX returns true if the variant parses JSX syntax.
func (v Variant) HasJSX() bool {
	return v == VariantJSX || v == VariantTSX
}
