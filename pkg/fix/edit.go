// Package fix provides text edit types for suggested code fixes.
// Analyzer actions carry edits expressed as byte-offset replacements
// against the snippet they were produced from.
package fix

import (
	"errors"
	"fmt"
	"slices"
)

// TextEdit represents a single text replacement in a snippet.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsert returns true if this edit inserts text without removing any.
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset && e.NewText != ""
}

// IsDelete returns true if this edit removes text without adding any.
func (e TextEdit) IsDelete() bool {
	return e.StartOffset < e.EndOffset && e.NewText == ""
}

// EditBuilder accumulates text edits for a single suggestion.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// ErrOverlap is returned when two edits in a suggestion overlap.
var ErrOverlap = errors.New("overlapping edits")

// Validate checks that every edit is within bounds for content of the given
// length and that no two edits overlap. Edits do not need to be sorted.
func Validate(edits []TextEdit, contentLen int) error {
	for _, e := range edits {
		if e.StartOffset < 0 || e.EndOffset < e.StartOffset || e.EndOffset > contentLen {
			return fmt.Errorf("edit [%d,%d) out of range for content of length %d",
				e.StartOffset, e.EndOffset, contentLen)
		}
	}

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b TextEdit) int {
		return a.StartOffset - b.StartOffset
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartOffset < sorted[i-1].EndOffset {
			return fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlap,
				sorted[i-1].StartOffset, sorted[i-1].EndOffset,
				sorted[i].StartOffset, sorted[i].EndOffset)
		}
	}

	return nil
}
