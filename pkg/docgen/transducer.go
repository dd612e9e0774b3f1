// Package docgen regenerates lint rule documentation. The transducer walks a
// rule's markdown event stream, re-rendering the supported markup subset and
// executing each code example through the harness; the assembler wraps the
// regenerated bodies into rule pages, group tables and index fragments.
package docgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/directive"
	"github.com/yaklabco/ruledoc/pkg/docevent"
	"github.com/yaklabco/ruledoc/pkg/harness"
	"github.com/yaklabco/ruledoc/pkg/langdetect"
)

// ProtocolError reports a malformed event stream: a contract violation
// between the markdown tokenizer and the transducer, not a content problem
// in any one rule. It aborts the whole run instead of being deferred.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "documentation event protocol violation: " + e.Reason
}

// Transducer renders one rule's documentation event stream, executing the
// embedded code examples as it goes.
type Transducer struct {
	Harness *harness.Harness

	// Group and Rule identify the rule under documentation; examples only
	// ever run this one rule.
	Group string
	Rule  string

	// DeclaresFix reports whether the rule's metadata declares a fix kind.
	DeclaresFix bool
}

type openBlock struct {
	dir directive.Directive
	buf strings.Builder
}

// Run consumes the event stream in a single pass and returns the rendered
// body plus the events of the documentation's first paragraph, used as the
// rule's summary in the group table.
func (t *Transducer) Run(ctx context.Context, events []docevent.Event) (string, []docevent.Event, error) {
	var (
		out           strings.Builder
		summary       []docevent.Event
		inSummary     bool
		listDepth     int
		ordinal       int
		ordinalActive bool
		pendingLink   *docevent.Event
		block         *openBlock
	)

	for _, ev := range events {
		// The first paragraph is captured verbatim as the summary. The
		// latch never re-opens for later paragraphs.
		if inSummary {
			if ev.Kind == docevent.KindParagraphEnd {
				inSummary = false
			} else {
				summary = append(summary, ev)
			}
		}

		switch ev.Kind {
		case docevent.KindCodeBlockStart:
			dir := directive.Parse(ev.Info)

			// The rendered tag is re-derived from the resolved language so
			// directive keywords never leak into the output.
			out.WriteString("```")
			if dir.HasInfo() {
				tag := dir.FenceTag()
				if !dir.Known {
					tag = langdetect.Canonical(tag)
				}
				out.WriteString(tag)
			}
			out.WriteByte('\n')
			block = &openBlock{dir: dir}

		case docevent.KindCodeBlockEnd:
			out.WriteString("```\n\n")
			if block == nil {
				return "", nil, &ProtocolError{Reason: "code block end without a matching start"}
			}
			finished := block
			block = nil

			result, err := t.Harness.Execute(ctx, t.Group, t.Rule, finished.dir, finished.buf.String(), t.DeclaresFix)
			if err != nil {
				return "", nil, err
			}
			out.WriteString(result.Transcript)

		case docevent.KindText:
			if block != nil {
				block.buf.WriteString(ev.Text)
			}
			out.WriteString(ev.Text)

		case docevent.KindHeadingStart:
			out.WriteString(strings.Repeat("#", ev.Level))
			out.WriteByte(' ')
		case docevent.KindHeadingEnd:
			out.WriteString("\n\n")

		case docevent.KindParagraphStart:
			if len(summary) == 0 && !inSummary {
				inSummary = true
			}
		case docevent.KindParagraphEnd:
			out.WriteString("\n\n")

		case docevent.KindInlineCode:
			out.WriteByte('`')
			out.WriteString(ev.Text)
			out.WriteByte('`')

		case docevent.KindLinkStart:
			if pendingLink != nil {
				return "", nil, &ProtocolError{Reason: "nested link start"}
			}
			pendingLink = &ev
			if ev.Link == docevent.LinkAuto {
				out.WriteByte('<')
			} else {
				out.WriteByte('[')
			}

		case docevent.KindLinkEnd:
			if pendingLink == nil {
				return "", nil, &ProtocolError{Reason: "link end without a pending link start"}
			}
			link := pendingLink
			pendingLink = nil
			if link.Link == docevent.LinkAuto {
				out.WriteByte('>')
			} else {
				out.WriteString("](")
				out.WriteString(link.Destination)
				if link.Title != "" {
					out.WriteString(` "`)
					out.WriteString(link.Title)
					out.WriteString(`"`)
				}
				out.WriteByte(')')
			}

		case docevent.KindSoftBreak:
			out.WriteByte('\n')
		case docevent.KindHardBreak:
			out.WriteString("<br />\n")

		case docevent.KindListStart:
			listDepth++
			if ev.Ordered {
				ordinal = ev.Start
				ordinalActive = true
			}
			if listDepth > 1 {
				out.WriteByte('\n')
			}
		case docevent.KindListEnd:
			ordinalActive = false
			listDepth--
			out.WriteByte('\n')

		case docevent.KindItemStart:
			out.WriteString(strings.Repeat("  ", listDepth-1))
			if ordinalActive {
				fmt.Fprintf(&out, "%d. ", ordinal)
			} else {
				out.WriteString("- ")
			}
		case docevent.KindItemEnd:
			if ordinalActive {
				ordinal++
			}
			out.WriteByte('\n')

		case docevent.KindEmphasisStart, docevent.KindEmphasisEnd:
			out.WriteByte('_')
		case docevent.KindStrongStart, docevent.KindStrongEnd:
			out.WriteString("**")
		case docevent.KindStrikethroughStart, docevent.KindStrikethroughEnd:
			out.WriteByte('~')

		case docevent.KindBlockQuoteStart:
			out.WriteByte('>')
		case docevent.KindBlockQuoteEnd:
			out.WriteByte('\n')

		case docevent.KindUnsupported:
			return "", nil, &ProtocolError{Reason: "unsupported markup: " + ev.Node}

		default:
			return "", nil, &ProtocolError{Reason: fmt.Sprintf("unknown event kind %d", ev.Kind)}
		}
	}

	return out.String(), summary, nil
}
