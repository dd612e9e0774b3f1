package docgen

import (
	"fmt"
	"html"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/docevent"
)

// SummaryHTML renders a rule's captured summary events as the inline HTML
// fragment embedded in the group table cell. Only the inline subset can
// appear inside a paragraph, so anything else is a protocol violation.
func SummaryHTML(events []docevent.Event) (string, error) {
	var out strings.Builder

	for _, ev := range events {
		switch ev.Kind {
		case docevent.KindText:
			out.WriteString(html.EscapeString(ev.Text))
		case docevent.KindInlineCode:
			out.WriteString("<code>")
			out.WriteString(html.EscapeString(ev.Text))
			out.WriteString("</code>")
		case docevent.KindEmphasisStart:
			out.WriteString("<em>")
		case docevent.KindEmphasisEnd:
			out.WriteString("</em>")
		case docevent.KindStrongStart:
			out.WriteString("<strong>")
		case docevent.KindStrongEnd:
			out.WriteString("</strong>")
		case docevent.KindStrikethroughStart:
			out.WriteString("<del>")
		case docevent.KindStrikethroughEnd:
			out.WriteString("</del>")
		case docevent.KindLinkStart:
			fmt.Fprintf(&out, `<a href="%s">`, html.EscapeString(ev.Destination))
		case docevent.KindLinkEnd:
			out.WriteString("</a>")
		case docevent.KindSoftBreak:
			out.WriteByte(' ')
		case docevent.KindHardBreak:
			out.WriteString("<br />")
		default:
			return "", &ProtocolError{Reason: "summary contains non-inline markup: " + ev.Kind.String()}
		}
	}

	return out.String(), nil
}
