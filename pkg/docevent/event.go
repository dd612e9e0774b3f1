// Package docevent produces the flat event stream consumed by the
// documentation transducer. Events are generated from a goldmark parse of a
// rule's documentation text and consumed strictly in order, single pass.
package docevent

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies a documentation event.
type Kind uint8

const (
	KindHeadingStart Kind = iota
	KindHeadingEnd
	KindParagraphStart
	KindParagraphEnd
	KindText
	KindInlineCode
	KindLinkStart
	KindLinkEnd
	KindSoftBreak
	KindHardBreak
	KindListStart
	KindListEnd
	KindItemStart
	KindItemEnd
	KindEmphasisStart
	KindEmphasisEnd
	KindStrongStart
	KindStrongEnd
	KindStrikethroughStart
	KindStrikethroughEnd
	KindBlockQuoteStart
	KindBlockQuoteEnd
	KindCodeBlockStart
	KindCodeBlockEnd

	// KindUnsupported marks markup the documentation subset does not cover.
	// Consumers treat it as a fatal protocol error, never drop it silently.
	KindUnsupported
)

// String returns a short name for the event kind.
func (k Kind) String() string {
	names := [...]string{
		"heading-start", "heading-end",
		"paragraph-start", "paragraph-end",
		"text", "inline-code",
		"link-start", "link-end",
		"soft-break", "hard-break",
		"list-start", "list-end",
		"item-start", "item-end",
		"emphasis-start", "emphasis-end",
		"strong-start", "strong-end",
		"strikethrough-start", "strikethrough-end",
		"blockquote-start", "blockquote-end",
		"code-block-start", "code-block-end",
		"unsupported",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "invalid"
}

// LinkKind identifies the syntax family of a link.
type LinkKind uint8

const (
	// LinkBracketed covers inline, reference and shortcut links, which all
	// render in bracket form.
	LinkBracketed LinkKind = iota

	// LinkAuto covers autolinks, rendered as <url>.
	LinkAuto
)

// Event is one tagged event in a rule's documentation stream. Only the
// fields relevant to the Kind are populated.
type Event struct {
	Kind Kind

	// Level is the heading level for KindHeadingStart.
	Level int

	// Text is the content for KindText and KindInlineCode.
	Text string

	// Link, Destination and Title describe KindLinkStart.
	Link        LinkKind
	Destination string
	Title       string

	// Ordered and Start describe KindListStart. Start is the first ordinal
	// of an ordered list and is meaningless when Ordered is false.
	Ordered bool
	Start   int

	// Info is the verbatim info string for KindCodeBlockStart.
	Info string

	// Node names the offending construct for KindUnsupported.
	Node string
}
