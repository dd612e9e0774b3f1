package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Astro(t *testing.T) {
	snippet := "---\nconst answer: number = 42;\n---\n<p>{answer}</p>\n"

	code, variant, err := Extract(snippet, VariantAstro)
	require.NoError(t, err)
	assert.Equal(t, VariantTS, variant)
	assert.Contains(t, code, "const answer: number = 42;")
	assert.NotContains(t, code, "<p>")
}

func TestExtract_AstroWithoutFrontMatter(t *testing.T) {
	code, variant, err := Extract("<p>static</p>", VariantAstro)
	require.NoError(t, err)
	assert.Equal(t, VariantTS, variant)
	assert.Empty(t, code)
}

func TestExtract_AstroUnterminated(t *testing.T) {
	_, _, err := Extract("---\nconst a = 1;", VariantAstro)
	assert.Error(t, err)
}

func TestExtract_Svelte(t *testing.T) {
	tests := []struct {
		name        string
		snippet     string
		wantVariant Variant
		wantCode    string
	}{
		{
			name:        "plain script",
			snippet:     "<script>\nlet count = 0;\n</script>\n<button>{count}</button>",
			wantVariant: VariantJS,
			wantCode:    "let count = 0;\n",
		},
		{
			name:        "typescript script",
			snippet:     `<script lang="ts">let count: number = 0;</script>`,
			wantVariant: VariantTS,
			wantCode:    "let count: number = 0;",
		},
		{
			name:        "no script element",
			snippet:     "<h1>hello</h1>",
			wantVariant: VariantJS,
			wantCode:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, variant, err := Extract(tt.snippet, VariantSvelte)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVariant, variant)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExtract_VueUnterminatedScript(t *testing.T) {
	_, _, err := Extract("<script>let a = 1;", VariantVue)
	assert.Error(t, err)
}

func TestExtract_PassThrough(t *testing.T) {
	code, variant, err := Extract("let a = 1;", VariantJS)
	require.NoError(t, err)
	assert.Equal(t, VariantJS, variant)
	assert.Equal(t, "let a = 1;", code)
}
