package docevent

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// markdown is the shared goldmark instance for documentation parsing.
// Strikethrough is the only extension the documentation subset uses.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// Stream parses documentation text and returns its full event stream.
// The stream is finite and intended for exactly one in-order consumption.
func Stream(source []byte) ([]Event, error) {
	reader := text.NewReader(source)
	doc := markdown.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	s := &streamer{source: source}
	if err := ast.Walk(doc, s.visit); err != nil {
		return nil, fmt.Errorf("stream documentation events: %w", err)
	}

	return s.events, nil
}

type streamer struct {
	source []byte
	events []Event
}

func (s *streamer) emit(ev Event) {
	s.events = append(s.events, ev)
}

//nolint:cyclop // one case per AST node kind
func (s *streamer) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
		// No events for the document shell.

	case *ast.Heading:
		if entering {
			s.emit(Event{Kind: KindHeadingStart, Level: node.Level})
		} else {
			s.emit(Event{Kind: KindHeadingEnd})
		}

	case *ast.Paragraph:
		if entering {
			s.emit(Event{Kind: KindParagraphStart})
		} else {
			s.emit(Event{Kind: KindParagraphEnd})
		}

	case *ast.TextBlock:
		// Tight list items wrap their text in a TextBlock; it is
		// transparent in the event stream.

	case *ast.Text:
		if entering {
			s.emit(Event{Kind: KindText, Text: string(node.Segment.Value(s.source))})
			switch {
			case node.HardLineBreak():
				s.emit(Event{Kind: KindHardBreak})
			case node.SoftLineBreak():
				s.emit(Event{Kind: KindSoftBreak})
			}
		}

	case *ast.String:
		if entering {
			s.emit(Event{Kind: KindText, Text: string(node.Value)})
		}

	case *ast.CodeSpan:
		if entering {
			s.emit(Event{Kind: KindInlineCode, Text: string(inlineText(node, s.source))})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		kind := KindEmphasisStart
		if !entering {
			kind = KindEmphasisEnd
		}
		if node.Level >= 2 {
			kind = KindStrongStart
			if !entering {
				kind = KindStrongEnd
			}
		}
		s.emit(Event{Kind: kind})

	case *east.Strikethrough:
		if entering {
			s.emit(Event{Kind: KindStrikethroughStart})
		} else {
			s.emit(Event{Kind: KindStrikethroughEnd})
		}

	case *ast.Link:
		if entering {
			s.emit(Event{
				Kind:        KindLinkStart,
				Link:        LinkBracketed,
				Destination: string(node.Destination),
				Title:       string(node.Title),
			})
		} else {
			s.emit(Event{Kind: KindLinkEnd})
		}

	case *ast.AutoLink:
		if entering {
			url := string(node.URL(s.source))
			s.emit(Event{Kind: KindLinkStart, Link: LinkAuto, Destination: url})
			s.emit(Event{Kind: KindText, Text: url})
			s.emit(Event{Kind: KindLinkEnd})
		}
		return ast.WalkSkipChildren, nil

	case *ast.List:
		if entering {
			s.emit(Event{Kind: KindListStart, Ordered: node.IsOrdered(), Start: node.Start})
		} else {
			s.emit(Event{Kind: KindListEnd})
		}

	case *ast.ListItem:
		if entering {
			s.emit(Event{Kind: KindItemStart})
		} else {
			s.emit(Event{Kind: KindItemEnd})
		}

	case *ast.Blockquote:
		if entering {
			s.emit(Event{Kind: KindBlockQuoteStart})
		} else {
			s.emit(Event{Kind: KindBlockQuoteEnd})
		}

	case *ast.FencedCodeBlock:
		if entering {
			info := ""
			if node.Info != nil {
				info = string(node.Info.Segment.Value(s.source))
			}
			s.emit(Event{Kind: KindCodeBlockStart, Info: info})
			for i := range node.Lines().Len() {
				line := node.Lines().At(i)
				s.emit(Event{Kind: KindText, Text: string(line.Value(s.source))})
			}
			s.emit(Event{Kind: KindCodeBlockEnd})
		}
		return ast.WalkSkipChildren, nil

	default:
		// Unknown markup is surfaced, never silently dropped. The consumer
		// decides whether it is fatal.
		if entering {
			s.emit(Event{Kind: KindUnsupported, Node: n.Kind().String()})
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// inlineText concatenates the text segments of an inline node's children.
func inlineText(n ast.Node, source []byte) []byte {
	var out []byte
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
		}
	}
	return out
}
