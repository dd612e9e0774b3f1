// Package configloader resolves the project settings file consulted while
// generating rule documentation. It discovers the settings file by searching
// upward from the working directory, with explicit paths and environment
// overrides taking precedence.
package configloader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/ruledoc/pkg/fsutil"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

// settingsFilePermissions is the file mode for settings files (world-readable).
const settingsFilePermissions = 0644

// LoadOptions controls settings loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for the settings file.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit settings file path (from --settings flag).
	// If set, discovery and environment overrides are skipped.
	ExplicitPath string

	// IgnoreEnv skips the RULEDOC_SETTINGS environment override.
	IgnoreEnv bool
}

// LoadResult contains the resolved settings and metadata.
type LoadResult struct {
	// Settings is the loaded severity settings. Never nil; a missing
	// settings file yields empty settings.
	Settings *settings.Settings

	// Path is the file the settings were loaded from, or empty string if
	// no settings file was found.
	Path string
}

// Load resolves the severity settings.
// Precedence (highest to lowest):
//  1. Explicit path (opts.ExplicitPath)
//  2. Environment override (RULEDOC_SETTINGS)
//  3. Upward search from opts.WorkingDir
//  4. Empty settings
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	path, err := resolvePath(ctx, opts)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return &LoadResult{Settings: settings.New()}, nil
	}

	data, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	st, err := settings.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	return &LoadResult{Settings: st, Path: path}, nil
}

// WriteDefault writes the settings to the default path in dir. Returns the
// path written.
func WriteDefault(ctx context.Context, dir string, st *settings.Settings) (string, error) {
	data, err := st.ToYAML()
	if err != nil {
		return "", err
	}

	path := DefaultSettingsPath(dir)
	if err := fsutil.WriteAtomic(ctx, path, data, settingsFilePermissions); err != nil {
		return "", fmt.Errorf("write settings file %s: %w", path, err)
	}

	return path, nil
}

// resolvePath determines which settings file to load, if any.
func resolvePath(ctx context.Context, opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if !fileExists(opts.ExplicitPath) {
			return "", fmt.Errorf("settings file not found: %s", opts.ExplicitPath)
		}
		return opts.ExplicitPath, nil
	}

	if !opts.IgnoreEnv {
		if envPath := SettingsPathFromEnv(); envPath != "" {
			if !fileExists(envPath) {
				return "", fmt.Errorf("settings file from %s not found: %s", EnvSettingsPath, envPath)
			}
			return envPath, nil
		}
	}

	return FindSettingsFile(ctx, opts.WorkingDir)
}

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
