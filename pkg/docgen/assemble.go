package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/ruledoc/pkg/docevent"
	"github.com/yaklabco/ruledoc/pkg/fsutil"
	"github.com/yaklabco/ruledoc/pkg/harness"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

// generatedNotice marks files no one should edit by hand.
const generatedNotice = "<!-- this file is auto generated, use `ruledoc generate` to update it -->"

// Assembler regenerates the full documentation set for a rule registry.
type Assembler struct {
	registry *rules.Registry
	harness  *harness.Harness
}

// NewAssembler builds an assembler over the given registry and harness.
func NewAssembler(registry *rules.Registry, h *harness.Harness) *Assembler {
	return &Assembler{registry: registry, harness: h}
}

// Page is one generated rule page.
type Page struct {
	// FileName is the page's file name under the rules directory.
	FileName string

	Content []byte
}

// Output is the complete result of a documentation run. Pages are present
// for every rule whose examples all passed; rules with broken examples are
// recorded in Errors instead and produce no page.
type Output struct {
	// Index is the rules index page with per-group tables.
	Index []byte

	// Pages are the per-rule pages in generation order.
	Pages []Page

	// Recommended is the standalone recommended-rules list fragment.
	Recommended []byte

	// CountFragment is the standalone total-rule-count fragment.
	CountFragment []byte

	// RuleCount is the number of registered rules, released or not.
	RuleCount int

	// Errors holds the deferred per-rule failures.
	Errors *ErrorList
}

// Write stores the output under dir, one file per rule page plus the index
// and fragments. Pages for failed rules are simply absent. Files whose
// content is already current are left untouched so regeneration does not
// churn modification times.
func (o *Output) Write(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	files := map[string][]byte{
		"index.md":           o.Index,
		"recommended.md":     o.Recommended,
		"number-of-rules.md": o.CountFragment,
	}
	for _, page := range o.Pages {
		files[page.FileName] = page.Content
	}

	for name, content := range files {
		if _, err := fsutil.WriteAtomicIfChanged(ctx, filepath.Join(dir, name), content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Assemble processes every registered rule in stable order and returns the
// regenerated documentation. Broken examples are deferred into the output's
// error list; the returned error is non-nil only for failures that poison
// the whole run, like event protocol violations or missing severity
// mappings.
func (a *Assembler) Assemble(ctx context.Context) (*Output, error) {
	out := &Output{
		RuleCount: a.registry.Count(),
		Errors:    &ErrorList{},
	}

	var index, recommended bytes.Buffer
	writeIndexHeader(&index)

	// Nursery is documented last regardless of its sort position.
	var groups []string
	hasNursery := false
	for _, group := range a.registry.Groups() {
		if group == NurseryGroup {
			hasNursery = true
			continue
		}
		groups = append(groups, group)
	}
	if hasNursery {
		groups = append(groups, NurseryGroup)
	}

	for _, group := range groups {
		if err := a.assembleGroup(ctx, group, out, &index, &recommended); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(&index, "\n## Recommended rules\n\nThe recommended rules are:\n\n<ul>\n%s</ul>\n", recommended.String())

	out.Index = index.Bytes()
	out.Recommended = fmt.Appendf(nil, "%s\n<ul>\n%s</ul>\n", generatedNotice, recommended.String())
	out.CountFragment = fmt.Appendf(nil, "%s\n%d\n", generatedNotice, out.RuleCount)
	return out, nil
}

func writeIndexHeader(index *bytes.Buffer) {
	index.WriteString("---\ntitle: Rules\ndescription: List of available lint rules.\n---\n\n")
	index.WriteString("Below the list of available rules, divided by group. Here's a legend of the emojis:\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"approve-check-circle\" label=\"This rule is recommended\" /></span> indicates that the rule is part of the recommended rules.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"seti:config\" label=\"The rule has a safe fix\" /></span> indicates that the rule provides a code action (fix) that is **safe** to apply.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"warning\" label=\"The rule has an unsafe fix\" /></span> indicates that the rule provides a code action (fix) that is **unsafe** to apply.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"seti:javascript\" label=\"JavaScript and super languages rule\" /></span> indicates that the rule is applied to JavaScript and super languages files.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"seti:typescript\" label=\"TypeScript rule\" /></span> indicates that the rule is applied to TypeScript and TSX files.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"seti:json\" label=\"JSON rule\" /></span> indicates that the rule is applied to JSON files.\n")
	index.WriteString("- The icon <span class='inline-icon'><Icon name=\"seti:css\" label=\"CSS rule\" /></span> indicates that the rule is applied to CSS files.\n")
}

func (a *Assembler) assembleGroup(ctx context.Context, group string, out *Output, index, recommended *bytes.Buffer) error {
	title, description, ok := GroupMetadata(group)
	if !ok {
		return fmt.Errorf("unknown rule group %q", group)
	}
	isNursery := group == NurseryGroup

	fmt.Fprintf(index, "\n## %s\n\n%s\n\n", title, description)
	index.WriteString("| Rule name | Description | Properties |\n")
	index.WriteString("| --- | --- | --- |\n")

	for _, meta := range a.registry.Rules(group) {
		// Unreleased rules are not documented.
		if !meta.IsReleased() {
			continue
		}

		isRecommended := !isNursery && meta.Recommended
		kebab := meta.KebabName()
		if isRecommended {
			fmt.Fprintf(recommended, "\t<li><a href='/rules/%s'>%s</a></li>\n", kebab, meta.Name)
		}

		page, summary, err := a.assembleRule(ctx, meta, isRecommended)
		if err != nil {
			var protoErr *ProtocolError
			if errors.As(err, &protoErr) || errors.Is(err, harness.ErrSetup) {
				return err
			}
			out.Errors.Add(meta.Name, err)
			continue
		}

		summaryHTML, err := SummaryHTML(summary)
		if err != nil {
			return err
		}

		out.Pages = append(out.Pages, Page{FileName: kebab + ".md", Content: page})
		fmt.Fprintf(index, "| [%s](/rules/%s) | %s | %s |\n", meta.Name, kebab, summaryHTML, propertyBadges(isRecommended, meta))
	}

	return nil
}

// assembleRule regenerates one rule's page and returns it with the rule's
// summary events.
func (a *Assembler) assembleRule(ctx context.Context, meta rules.Metadata, isRecommended bool) ([]byte, []docevent.Event, error) {
	events, err := docevent.Stream([]byte(meta.Docs))
	if err != nil {
		return nil, nil, &ProtocolError{Reason: err.Error()}
	}

	transducer := &Transducer{
		Harness:     a.harness,
		Group:       meta.Group,
		Rule:        meta.Name,
		DeclaresFix: meta.FixKind != rules.FixNone,
	}
	body, summary, err := transducer.Run(ctx, events)
	if err != nil {
		return nil, nil, err
	}

	var content bytes.Buffer

	titleVersion := "(not released)"
	if meta.IsReleased() {
		titleVersion = fmt.Sprintf("(since v%s)", meta.Version)
	}
	fmt.Fprintf(&content, "---\ntitle: %s %s\n---\n\n", meta.Name, titleVersion)
	fmt.Fprintf(&content, "**Diagnostic Category: `%s`**\n\n", meta.Category())

	writeNoteBlock(&content, meta, isRecommended)

	if meta.Group == NurseryGroup {
		content.WriteString(":::caution\nThis rule is part of the [nursery](/rules/#nursery) group.\n:::\n\n")
	}

	writeSources(&content, meta)

	content.WriteString(body)

	content.WriteString("## Related links\n\n")
	content.WriteString("- [Disable a rule](/docs/#disable-a-rule)\n")
	content.WriteString("- [Rule options](/docs/#rule-options)\n")

	return content.Bytes(), summary, nil
}

func writeNoteBlock(content *bytes.Buffer, meta rules.Metadata, isRecommended bool) {
	if !isRecommended && meta.FixKind == rules.FixNone {
		return
	}

	content.WriteString(":::note\n")
	if isRecommended {
		content.WriteString("- This rule is recommended. A diagnostic error will appear when linting your code.\n")
	}
	switch meta.FixKind {
	case rules.FixSafe:
		content.WriteString("- This rule has a **safe** fix.\n")
	case rules.FixUnsafe:
		content.WriteString("- This rule has an **unsafe** fix.\n")
	}
	if line := languageNote(meta.Language); line != "" {
		content.WriteString(line)
	}
	content.WriteString(":::\n\n")
}

func languageNote(v lang.Variant) string {
	switch v {
	case lang.VariantJS:
		return "- This rule is applied to **JavaScript and super languages** files.\n"
	case lang.VariantJSX, lang.VariantTSX:
		return "- This rule is applied to **JSX and TSX** files.\n"
	case lang.VariantTS:
		return "- This rule is applied to **TypeScript and TSX** files.\n"
	case lang.VariantJSON:
		return "- This rule is applied to **JSON** files.\n"
	case lang.VariantCSS:
		return "- This rule is applied to **CSS** files.\n"
	default:
		return ""
	}
}

func writeSources(content *bytes.Buffer, meta rules.Metadata) {
	if len(meta.Sources) == 0 {
		return
	}

	content.WriteString("Sources: \n")
	for _, source := range meta.Sources {
		fmt.Fprintf(content, "- %s: <a href=\"%s\" target=\"_blank\"><code>%s</code></a>\n",
			meta.SourceKind.Label(), source.URL(), source.NamespacedName())
	}
	content.WriteString("\n")
}

func propertyBadges(isRecommended bool, meta rules.Metadata) string {
	var badges bytes.Buffer

	if isRecommended {
		badges.WriteString("<span class='inline-icon'><Icon name=\"approve-check-circle\" size=\"1.2rem\" label=\"This rule is recommended\" /></span>")
	}

	switch meta.FixKind {
	case rules.FixSafe:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:config\" label=\"The rule has a safe fix\" size=\"1.2rem\" /></span>")
	case rules.FixUnsafe:
		badges.WriteString("<span class='inline-icon'><Icon name=\"warning\" label=\"The rule has an unsafe fix\" size=\"1.2rem\" /></span>")
	}

	switch meta.Language {
	case lang.VariantJS:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:javascript\" label=\"JavaScript and super languages rule.\" size=\"1.2rem\"/></span>")
	case lang.VariantJSX, lang.VariantTSX:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:javascript\" label=\"JSX rule\" size=\"1.2rem\"/></span>")
	case lang.VariantTS:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:typescript\" label=\"TypeScript rule\" size=\"1.2rem\"/></span>")
	case lang.VariantJSON:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:json\" label=\"JSON rule\" size=\"1.2rem\"/></span>")
	case lang.VariantCSS:
		badges.WriteString("<span class='inline-icon'><Icon name=\"seti:css\" label=\"CSS rule\" size=\"1.2rem\"/></span>")
	}

	return badges.String()
}
