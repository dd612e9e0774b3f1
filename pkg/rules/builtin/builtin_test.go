package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/docgen"
	"github.com/yaklabco/ruledoc/pkg/harness"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

func TestRegister(t *testing.T) {
	registry := rules.NewRegistry()
	frontend := jsonlang.NewFrontend()

	require.NoError(t, Register(registry, frontend))
	assert.Equal(t, 3, registry.Count())

	meta, ok := registry.Get("suspicious", "noDuplicateObjectKeys")
	require.True(t, ok)
	assert.True(t, meta.Recommended)
	assert.Equal(t, rules.FixUnsafe, meta.FixKind)
}

func TestApplyDefaultSeverities(t *testing.T) {
	st := settings.New()
	require.NoError(t, ApplyDefaultSeverities(st))

	for _, def := range all() {
		_, ok := st.Resolve(def.meta.Category())
		assert.True(t, ok, "category %s has no severity", def.meta.Category())
	}
}

// The built-in rules' documentation examples must hold up under the full
// pipeline: every expect_diagnostic example raises exactly one diagnostic
// and every valid example raises none.
func TestBuiltinDocsGenerate(t *testing.T) {
	registry := rules.NewRegistry()
	frontend := jsonlang.NewFrontend()
	require.NoError(t, Register(registry, frontend))

	st := settings.New()
	require.NoError(t, ApplyDefaultSeverities(st))

	h := harness.New(lang.Frontends{JSON: frontend}, st, nil)
	out, err := docgen.NewAssembler(registry, h).Assemble(context.Background())
	require.NoError(t, err)
	require.True(t, out.Errors.Empty(), "deferred errors: %v", out.Errors.Err())

	require.Len(t, out.Pages, 3)
	names := make([]string, 0, len(out.Pages))
	for _, page := range out.Pages {
		names = append(names, page.FileName)
	}
	assert.ElementsMatch(t, []string{
		"no-duplicate-object-keys.md",
		"no-empty-member-names.md",
		"use-sorted-keys.md",
	}, names)

	assert.Contains(t, string(out.Recommended), "noDuplicateObjectKeys")
	assert.NotContains(t, string(out.Recommended), "useSortedKeys")
}

func runCheck(t *testing.T, check jsonlang.CheckFunc, src string) []lang.Signal {
	t.Helper()
	doc, parseErr := jsonlang.ParseDocument(src)
	require.Nil(t, parseErr)

	var signals []lang.Signal
	require.NoError(t, check(doc, func(s lang.Signal) lang.Flow {
		signals = append(signals, s)
		return lang.Continue()
	}))
	return signals
}

func TestNoDuplicateObjectKeys(t *testing.T) {
	signals := runCheck(t, checkNoDuplicateObjectKeys, `{"a": 1, "b": {"x": 1, "x": 2}, "a": 3}`)
	require.Len(t, signals, 2)
	assert.Contains(t, signals[0].Diagnostic.Message, `"a"`)
	assert.Contains(t, signals[1].Diagnostic.Message, `"x"`)
	require.Len(t, signals[0].Actions, 1)
	assert.NotEmpty(t, signals[0].Actions[0].Edits)
}

func TestNoDuplicateObjectKeys_Clean(t *testing.T) {
	signals := runCheck(t, checkNoDuplicateObjectKeys, `{"a": 1, "b": 2}`)
	assert.Empty(t, signals)
}

func TestNoEmptyMemberNames(t *testing.T) {
	signals := runCheck(t, checkNoEmptyMemberNames, `{"": 1, "ok": {"": 2}}`)
	require.Len(t, signals, 2)
	assert.Empty(t, signals[0].Actions)
}

func TestUseSortedKeys_FirstOffensePerObject(t *testing.T) {
	signals := runCheck(t, checkUseSortedKeys, `{"c": 1, "a": 2, "b": 3}`)
	require.Len(t, signals, 1)
	assert.Contains(t, signals[0].Diagnostic.Message, `"a"`)
}

func TestUseSortedKeys_Sorted(t *testing.T) {
	signals := runCheck(t, checkUseSortedKeys, `{"a": 1, "b": 2}`)
	assert.Empty(t, signals)
}
