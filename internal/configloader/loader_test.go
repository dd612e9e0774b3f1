package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

func writeSettingsFile(t *testing.T, path string) {
	t.Helper()
	content := "severities:\n  lint/suspicious/noDuplicateObjectKeys: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	writeSettingsFile(t, path)

	result, err := Load(context.Background(), LoadOptions{ExplicitPath: path, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	sev, ok := result.Settings.Resolve("lint/suspicious/noDuplicateObjectKeys")
	require.True(t, ok)
	assert.Equal(t, diag.SeverityError, sev)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(context.Background(), LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings file not found")
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "from-env.yml")
	writeSettingsFile(t, path)
	t.Setenv(EnvSettingsPath, path)

	result, err := Load(context.Background(), LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
}

func TestLoad_EnvOverrideMissing(t *testing.T) {
	t.Setenv(EnvSettingsPath, filepath.Join(t.TempDir(), "nope.yml"))

	_, err := Load(context.Background(), LoadOptions{WorkingDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSettingsPath)
}

func TestLoad_DiscoversUpward(t *testing.T) {
	root := t.TempDir()
	writeSettingsFile(t, filepath.Join(root, ".ruledoc.yml"))
	nested := filepath.Join(root, "docs", "rules")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), LoadOptions{WorkingDir: nested, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".ruledoc.yml"), result.Path)
	assert.Equal(t, 1, result.Settings.Len())
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	root := t.TempDir()
	writeSettingsFile(t, filepath.Join(root, ".ruledoc.yml"))
	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o755))

	result, err := Load(context.Background(), LoadOptions{WorkingDir: project, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Equal(t, 0, result.Settings.Len())
}

func TestLoad_NoSettingsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	require.NotNil(t, result.Settings)
	assert.Equal(t, 0, result.Settings.Len())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ruledoc.yml")
	require.NoError(t, os.WriteFile(path, []byte("severities: [not a map"), 0o644))

	_, err := Load(context.Background(), LoadOptions{ExplicitPath: path, IgnoreEnv: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := settings.New()
	require.NoError(t, st.Set("lint/style/noEmptyMemberNames", diag.SeverityWarning))

	path, err := WriteDefault(context.Background(), dir, st)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ruledoc.yml"), path)

	result, err := Load(context.Background(), LoadOptions{ExplicitPath: path, IgnoreEnv: true})
	require.NoError(t, err)
	sev, ok := result.Settings.Resolve("lint/style/noEmptyMemberNames")
	require.True(t, ok)
	assert.Equal(t, diag.SeverityWarning, sev)
}

func TestFindSettingsFile_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeSettingsFile(t, filepath.Join(dir, "ruledoc.yml"))
	writeSettingsFile(t, filepath.Join(dir, ".ruledoc.yml"))

	path, err := FindSettingsFile(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ruledoc.yml"), path)
}
