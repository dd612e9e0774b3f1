package fix

import (
	"bytes"
	"slices"
)

// Apply validates and applies a suggestion's edits to content, returning the
// rewritten content. The input is never modified. Edits may be given in any
// order; they are applied left to right.
func Apply(content []byte, edits []TextEdit) ([]byte, error) {
	if err := Validate(edits, len(content)); err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return slices.Clone(content), nil
	}

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b TextEdit) int {
		return a.StartOffset - b.StartOffset
	})

	delta := 0
	for _, e := range sorted {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range sorted {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}
