package lang

import (
	"fmt"
	"regexp"
	"strings"
)

// Embedding variants wrap their analyzable script in host markup: Astro
// components carry a TypeScript front matter fence, Svelte and Vue single
// file components carry <script> elements. Extract rewrites such a snippet
// into a plain script snippet plus the concrete variant to parse it as.

var (
	scriptOpenRe = regexp.MustCompile(`(?is)<script([^>]*)>`)
	langAttrRe   = regexp.MustCompile(`(?i)lang\s*=\s*["']?(ts|typescript)["']?`)
)

// Extract rewrites an embedded snippet into its host-language form.
// Non-embedding variants pass through unchanged.
func Extract(snippet string, variant Variant) (string, Variant, error) {
	switch variant {
	case VariantAstro:
		return extractAstro(snippet)
	case VariantSvelte, VariantVue:
		return extractScriptElement(snippet, variant)
	default:
		return snippet, variant, nil
	}
}

// extractAstro returns the component's front matter, delimited by a pair of
// "---" fences at the start of the snippet. Astro front matter is always
// TypeScript.
func extractAstro(snippet string) (string, Variant, error) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(snippet, "\r\n"), "---")
	if !ok {
		return "", VariantTS, nil
	}

	body, _, ok := strings.Cut(rest, "---")
	if !ok {
		return "", VariantAstro, fmt.Errorf("astro front matter is not terminated")
	}

	return strings.TrimLeft(body, "\r\n"), VariantTS, nil
}

// extractScriptElement returns the content of the first <script> element.
// The lang attribute selects TypeScript; otherwise the script is JavaScript.
func extractScriptElement(snippet string, variant Variant) (string, Variant, error) {
	open := scriptOpenRe.FindStringSubmatchIndex(snippet)
	if open == nil {
		return "", VariantJS, nil
	}

	attrs := snippet[open[2]:open[3]]
	body := snippet[open[1]:]

	end := strings.Index(strings.ToLower(body), "</script>")
	if end < 0 {
		return "", variant, fmt.Errorf("script element is not terminated")
	}

	target := VariantJS
	if langAttrRe.MatchString(attrs) {
		target = VariantTS
	}

	return strings.TrimLeft(body[:end], "\r\n"), target, nil
}
