// Package langdetect normalizes the language tags of foreign code blocks.
// Documentation authors write fence tags loosely ("Shell", "sh", "GoLang");
// regenerated pages use go-enry's alias table so the same language always
// renders under one canonical tag. This is a deliberate departure from
// generators that copy foreign fence tags into the output verbatim.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Canonical returns the canonical lowercase fence tag for the given language
// token. Tokens enry does not know are returned lowercased as-is, so foreign
// tags are never dropped from the output.
func Canonical(token string) string {
	if token == "" {
		return ""
	}

	if lang, ok := enry.GetLanguageByAlias(token); ok {
		return normalize(lang)
	}

	return strings.ToLower(token)
}

// normalize converts an enry language name to a fence tag.
func normalize(lang string) string {
	tag := strings.ToLower(lang)

	// Enry names a few languages differently from their conventional
	// fence tags.
	switch tag {
	case "shellsession":
		return "console"
	case "vim script":
		return "vim"
	default:
		return strings.ReplaceAll(tag, " ", "-")
	}
}
