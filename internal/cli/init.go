package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/configloader"
	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/pkg/rules/builtin"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force bool
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ruledoc settings file",
		Long: `Create a new .ruledoc.yml settings file in the current directory,
pre-populated with the default severity of every built-in rule. The file
can be customized to change the severity reported for each rule category.

Examples:
  ruledoc init            Create .ruledoc.yml with default severities
  ruledoc init --force    Overwrite an existing settings file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing settings file")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	path := configloader.DefaultSettingsPath(workDir)
	if _, err := os.Stat(path); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", filepath.Base(path))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, path)
	}

	st := settings.New()
	if err := builtin.ApplyDefaultSeverities(st); err != nil {
		return fmt.Errorf("collect default severities: %w", err)
	}

	if _, err := configloader.WriteDefault(ctx, workDir, st); err != nil {
		return errWrite{err}
	}

	logger.Info("created settings file", logging.FieldPath, path)
	logger.Info("customize severities by editing the file")
	logger.Info("run 'ruledoc rules' to see all registered rules")

	return nil
}
