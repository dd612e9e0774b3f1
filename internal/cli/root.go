// Package cli provides the Cobra command structure for ruledoc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root ruledoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var settingsPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "ruledoc",
		Short: "Generate verified documentation pages for lint rules",
		Long: `ruledoc generates the documentation pages for lint rules from the
documentation embedded in each rule's metadata.

Every code example in a rule's documentation is executed against the rule
itself while the page is generated: examples marked expect_diagnostic must
produce exactly one diagnostic, and unmarked examples must produce none.
A page is only written when all of its examples behave as documented.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to settings file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
