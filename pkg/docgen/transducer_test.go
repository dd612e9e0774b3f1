package docgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/docevent"
	"github.com/yaklabco/ruledoc/pkg/harness"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

type fakeResult struct{}

func (fakeResult) HasErrors() bool                { return false }
func (fakeResult) Diagnostics() []diag.Diagnostic { return nil }
func (fakeResult) Tree() any                      { return "tree" }

// fakeFrontend emits one diagnostic per analysis for every rule except the
// ones listed in silent, and records the snippets it parsed.
type fakeFrontend struct {
	silent   map[string]bool
	snippets []string
}

func (f *fakeFrontend) Parse(_ context.Context, snippet string, _ lang.Variant) (lang.ParseResult, error) {
	f.snippets = append(f.snippets, snippet)
	return fakeResult{}, nil
}

func (f *fakeFrontend) Analyze(_ context.Context, _ any, filter lang.Filter, _ lang.Options, visit lang.Visitor) ([]diag.Diagnostic, error) {
	if f.silent[filter.Rule] {
		return nil, nil
	}
	flow := visit(lang.Signal{Diagnostic: diag.Diagnostic{
		Category: "lint/" + filter.Group + "/" + filter.Rule,
		Message:  "example violation",
		Span:     diag.Span{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 2},
	}})
	return nil, flow.Err()
}

func newTestHarness(t *testing.T, fe lang.Frontend, categories ...string) *harness.Harness {
	t.Helper()
	st := settings.New()
	for _, category := range categories {
		require.NoError(t, st.Set(category, diag.SeverityError))
	}
	return harness.New(lang.Frontends{JSON: fe}, st, nil)
}

func runTransducer(t *testing.T, h *harness.Harness, docs string) (string, []docevent.Event) {
	t.Helper()
	events, err := docevent.Stream([]byte(docs))
	require.NoError(t, err)

	tr := &Transducer{Harness: h, Group: "suspicious", Rule: "noDuplicateKeys"}
	body, summary, err := tr.Run(context.Background(), events)
	require.NoError(t, err)
	return body, summary
}

func TestTransducer_HeadingsAndParagraphs(t *testing.T) {
	body, _ := runTransducer(t, nil, "## Options\n\nSome text here.\n")
	assert.Equal(t, "## Options\n\nSome text here.\n\n", body)
}

func TestTransducer_InlineMarkup(t *testing.T) {
	body, _ := runTransducer(t, nil, "Use **bold**, _em_, `code` and ~~gone~~.\n")
	assert.Contains(t, body, "**bold**")
	assert.Contains(t, body, "_em_")
	assert.Contains(t, body, "`code`")
	assert.Contains(t, body, "~gone~")
}

func TestTransducer_Links(t *testing.T) {
	body, _ := runTransducer(t, nil, `See [the docs](https://example.com "Docs") and <https://example.org>.`)
	assert.Contains(t, body, `[the docs](https://example.com "Docs")`)
	assert.Contains(t, body, "<https://example.org>")
}

func TestTransducer_LinkWithoutTitle(t *testing.T) {
	body, _ := runTransducer(t, nil, "See [the docs](https://example.com).")
	assert.Contains(t, body, "[the docs](https://example.com)")
}

func TestTransducer_OrdinalsRecomputed(t *testing.T) {
	// Source numbering repeats "1."; rendered ordinals count up from the
	// list's start number.
	body, _ := runTransducer(t, nil, "1. first\n1. second\n1. third\n")
	assert.Contains(t, body, "1. first\n2. second\n3. third\n")
}

func TestTransducer_NestedList(t *testing.T) {
	body, _ := runTransducer(t, nil, "- outer\n  - inner\n")
	assert.Contains(t, body, "- outer\n\n  - inner\n")
}

func TestTransducer_SummaryIsFirstParagraphOnly(t *testing.T) {
	docs := "First paragraph with `code`.\n\nSecond paragraph.\n\n## Heading\n\nThird.\n"
	_, summary := runTransducer(t, nil, docs)

	html, err := SummaryHTML(summary)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph with <code>code</code>.", html)
}

func TestTransducer_ExecutesExample(t *testing.T) {
	fe := &fakeFrontend{}
	h := newTestHarness(t, fe, "lint/suspicious/noDuplicateKeys")

	docs := "Intro.\n\n```json,expect_diagnostic\n{\"a\": 1}\n```\n"
	body, _ := runTransducer(t, h, docs)

	require.Len(t, fe.snippets, 1)
	assert.Equal(t, "{\"a\": 1}\n", fe.snippets[0])

	assert.Contains(t, body, "```json\n{\"a\": 1}\n```\n")
	assert.NotContains(t, body, "expect_diagnostic")
	assert.Contains(t, body, `<pre class="language-text"><code class="language-text">`)
	assert.Contains(t, body, "example violation")
}

func TestTransducer_ForeignBlockNotExecuted(t *testing.T) {
	fe := &fakeFrontend{}
	h := newTestHarness(t, fe)

	body, _ := runTransducer(t, h, "```sh\necho hi\n```\n")
	assert.Empty(t, fe.snippets)
	assert.Contains(t, body, "```shell\necho hi\n```\n")
}

func TestTransducer_BrokenExampleFails(t *testing.T) {
	fe := &fakeFrontend{silent: map[string]bool{"noDuplicateKeys": true}}
	h := newTestHarness(t, fe, "lint/suspicious/noDuplicateKeys")

	events, err := docevent.Stream([]byte("```json,expect_diagnostic\n{}\n```\n"))
	require.NoError(t, err)

	tr := &Transducer{Harness: h, Group: "suspicious", Rule: "noDuplicateKeys"}
	_, _, err = tr.Run(context.Background(), events)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned none")
}

func TestTransducer_OrphanLinkEnd(t *testing.T) {
	tr := &Transducer{}
	_, _, err := tr.Run(context.Background(), []docevent.Event{{Kind: docevent.KindLinkEnd}})

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Reason, "link end")
}

func TestTransducer_NestedLinkStart(t *testing.T) {
	tr := &Transducer{}
	_, _, err := tr.Run(context.Background(), []docevent.Event{
		{Kind: docevent.KindLinkStart, Link: docevent.LinkBracketed},
		{Kind: docevent.KindLinkStart, Link: docevent.LinkBracketed},
	})

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Reason, "nested link")
}

func TestTransducer_UnsupportedEvent(t *testing.T) {
	tr := &Transducer{}
	_, _, err := tr.Run(context.Background(), []docevent.Event{
		{Kind: docevent.KindUnsupported, Node: "ThematicBreak"},
	})

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Reason, "ThematicBreak")
}
