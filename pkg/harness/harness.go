// Package harness executes documentation code examples against the analyzer
// and verifies that each example behaves exactly as its fence directive
// promises. An example marked expect_diagnostic must produce exactly one
// diagnostic; an unmarked example must produce none. Violations fail the
// whole documentation build rather than silently shipping a wrong transcript.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/directive"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

// ErrSetup marks failures caused by an inconsistent build rather than a
// broken example: the configuration generation step was not run, so a known
// rule category has no severity mapping. Callers treat it as fatal instead
// of deferring it with per-rule example errors.
var ErrSetup = errors.New("setup error")

// Harness binds the language frontends and severity settings used to run
// documentation examples. It is safe for concurrent use once constructed.
type Harness struct {
	dispatch *lang.Dispatch
	settings *settings.Settings
	dumpTo   io.Writer
}

// New builds a harness over the given frontends and settings. Failed
// examples dump their full diagnostic transcript to dumpTo so the author
// can see what the analyzer actually produced; a nil dumpTo discards it.
func New(frontends lang.Frontends, st *settings.Settings, dumpTo io.Writer) *Harness {
	if dumpTo == nil {
		dumpTo = io.Discard
	}
	return &Harness{
		dispatch: lang.NewDispatch(frontends),
		settings: st,
		dumpTo:   dumpTo,
	}
}

// Result is the outcome of executing one example.
type Result struct {
	// Transcript is the rendered diagnostic block for expect_diagnostic
	// examples, already wrapped for page inclusion. Empty otherwise.
	Transcript string

	// DiagnosticCount is the number of diagnostics the example produced,
	// parse errors included.
	DiagnosticCount int

	// HasCodeAction is true if the rule offered a non-suppression code
	// action for this example.
	HasCodeAction bool

	// Skipped is true when the directive asked for the example not to be
	// executed, either explicitly or because its language is foreign.
	Skipped bool
}

// Execute runs a single example for the rule identified by group and name.
// declaresFix reports whether the rule's metadata declares a fix kind; an
// expect_diagnostic example must agree with it. The returned error marks
// the example, and therefore the documentation build, as broken.
func (h *Harness) Execute(ctx context.Context, group, rule string, dir directive.Directive, snippet string, declaresFix bool) (Result, error) {
	if dir.Ignore || !dir.Known {
		return Result{Skipped: true}, nil
	}

	source := snippet
	variant := dir.Variant
	if variant.IsEmbedding() {
		extracted, inner, err := lang.Extract(snippet, variant)
		if err != nil {
			return Result{}, fmt.Errorf("rule %s/%s: %w", group, rule, err)
		}
		source = extracted
		variant = inner
	}

	fe, err := h.dispatch.Resolve(variant)
	if err != nil {
		return Result{}, fmt.Errorf("rule %s/%s: %w", group, rule, err)
	}

	filePath := "code-block." + dir.FenceTag()
	run := &execution{
		harness:  h,
		group:    group,
		rule:     rule,
		dir:      dir,
		filePath: filePath,
		source:   source,
		renderer: diag.NewHTMLRenderer(),
	}

	parsed, err := fe.Parse(ctx, source, variant)
	if err != nil {
		return Result{}, fmt.Errorf("rule %s/%s: parse: %w", group, rule, err)
	}

	if parsed.HasErrors() {
		// Parse errors count against the example's diagnostic budget.
		// An expect_diagnostic example may legitimately demonstrate a
		// syntax error, so analysis is skipped rather than failed.
		for _, d := range parsed.Diagnostics() {
			if err := run.record(d); err != nil {
				return Result{}, err
			}
		}
	} else if err := run.analyze(ctx, fe, parsed.Tree()); err != nil {
		return Result{}, err
	}

	if dir.ExpectDiagnostic {
		if run.count == 0 {
			return Result{}, fmt.Errorf("rule %s/%s: example expected a diagnostic but the analysis returned none", group, rule)
		}
		if !declaresFix && run.hasAction {
			return Result{}, fmt.Errorf("rule %s/%s: returned a code action but declares no fix kind", group, rule)
		}
	}

	return Result{
		Transcript:      run.wrapTranscript(),
		DiagnosticCount: run.count,
		HasCodeAction:   run.hasAction,
	}, nil
}

// execution carries the mutable state of one example run.
type execution struct {
	harness  *Harness
	group    string
	rule     string
	dir      directive.Directive
	filePath string
	source   string
	renderer *diag.Renderer

	count      int
	hasAction  bool
	all        []diag.Diagnostic
	transcript strings.Builder
}

// record counts one diagnostic against the directive's budget and renders
// it into the transcript. On a budget violation it dumps every diagnostic
// seen so far and fails the example.
func (e *execution) record(d diag.Diagnostic) error {
	if d.FilePath == "" {
		d = d.WithFile(e.filePath, e.source)
	}
	e.all = append(e.all, d)

	if !e.dir.ExpectDiagnostic {
		e.dumpAll()
		return fmt.Errorf("rule %s/%s: example was not expected to produce a diagnostic but the analysis returned one", e.group, e.rule)
	}
	if len(e.all) > 1 {
		e.dumpAll()
		return fmt.Errorf("rule %s/%s: example expected one diagnostic but the analysis returned %d", e.group, e.rule, len(e.all))
	}

	rendered, err := e.renderer.RenderString(&d)
	if err != nil {
		return fmt.Errorf("rule %s/%s: render diagnostic: %w", e.group, e.rule, err)
	}
	e.transcript.WriteString(rendered)
	e.count++
	return nil
}

func (e *execution) analyze(ctx context.Context, fe lang.Frontend, tree any) error {
	filter := lang.Filter{Group: e.group, Rule: e.rule}

	deferred, err := fe.Analyze(ctx, tree, filter, lang.Options{}, func(s lang.Signal) lang.Flow {
		d := s.Diagnostic

		sev, ok := e.harness.settings.Resolve(d.Category)
		if !ok {
			return lang.Stop(fmt.Errorf("rule %s/%s: %w: no severity configured for category %q", e.group, e.rule, ErrSetup, d.Category))
		}
		d = d.WithSeverity(sev)

		for _, a := range s.Actions {
			if a.Suppression {
				continue
			}
			e.hasAction = true
			d.Suggestions = append(d.Suggestions, diag.CodeSuggestion{
				Message: a.Message,
				Edits:   a.Edits,
			})
			break
		}

		if err := e.record(d); err != nil {
			return lang.Stop(err)
		}
		return lang.Continue()
	})
	if err != nil {
		return err
	}

	for _, d := range deferred {
		if sev, ok := e.harness.settings.Resolve(d.Category); ok {
			d = d.WithSeverity(sev)
		}
		if err := e.record(d); err != nil {
			return err
		}
	}
	return nil
}

// wrapTranscript wraps the rendered diagnostics in the code block the
// published page embeds them in.
func (e *execution) wrapTranscript() string {
	if !e.dir.ExpectDiagnostic {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<pre class="language-text"><code class="language-text">`)
	b.WriteString(e.transcript.String())
	b.WriteString("</code></pre>\n\n")
	return b.String()
}

// dumpAll writes every diagnostic seen so far in plain text so the author
// can tell which ones the example actually produced.
func (e *execution) dumpAll() {
	text := diag.NewTextRenderer()
	fmt.Fprintf(e.harness.dumpTo, "rule %s/%s produced %d diagnostic(s):\n\n", e.group, e.rule, len(e.all))
	for _, d := range e.all {
		if rendered, err := text.RenderString(&d); err == nil {
			io.WriteString(e.harness.dumpTo, rendered)
		}
	}
}
