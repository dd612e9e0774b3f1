package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/configloader"
	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/docgen"
	"github.com/yaklabco/ruledoc/pkg/harness"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
	"github.com/yaklabco/ruledoc/pkg/rules/builtin"
	"github.com/yaklabco/ruledoc/pkg/settings"
)

type generateFlags struct {
	output string
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate rule documentation pages",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "docs/rules",
		"directory to write generated pages into")

	return cmd
}

const generateLongDescription = `Generate the documentation pages for all registered rules.

Each rule's documentation is parsed from its metadata, every code example
is executed against the rule, and the verified page is written to the
output directory along with the rules index and recommended-rules fragment.

Rules whose examples do not behave as documented produce no page and are
reported at the end of the run.

Examples:
  ruledoc generate                    # Write pages into docs/rules
  ruledoc generate --output site/src  # Write pages into a custom directory
  ruledoc generate --settings custom.yml`

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit settings path from the root command's persistent flag.
	settingsPath, err := cmd.Flags().GetString("settings")
	if err != nil {
		return fmt.Errorf("get settings flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	st, err := loadSeverities(ctx, workDir, settingsPath, logger)
	if err != nil {
		return errSettings{err}
	}

	// Wire up the registry, the frontend, and the execution harness.
	frontend := jsonlang.NewFrontend()
	registry := rules.NewRegistry()
	if err := builtin.Register(registry, frontend); err != nil {
		return fmt.Errorf("register rules: %w", err)
	}

	h := harness.New(lang.Frontends{JSON: frontend}, st, cmd.ErrOrStderr())
	assembler := docgen.NewAssembler(registry, h)

	logger.Debug("starting documentation run",
		logging.FieldWorkingDir, workDir,
		logging.FieldOutput, flags.output,
		logging.FieldRulesTotal, registry.Count(),
	)

	out, err := assembler.Assemble(ctx)
	if err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	if err := out.Write(ctx, flags.output); err != nil {
		return errWrite{err}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatRunSummary(out))

	if !out.Errors.Empty() {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFailureReport(out.Errors.All()))
		return ErrPagesFailed
	}

	logger.Debug("documentation run complete",
		logging.FieldPages, len(out.Pages),
		logging.FieldOutput, flags.output,
	)

	return nil
}

// loadSeverities resolves the effective severity settings: built-in rule
// defaults overlaid with whatever the settings file configures.
func loadSeverities(ctx context.Context, workDir, settingsPath string, logger *log.Logger) (*settings.Settings, error) {
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: settingsPath,
	})
	if err != nil {
		return nil, err
	}

	if loadResult.Path != "" {
		logger.Debug("loaded settings", logging.FieldSettings, loadResult.Path)
	}

	st := settings.New()
	if err := builtin.ApplyDefaultSeverities(st); err != nil {
		return nil, err
	}

	for _, category := range loadResult.Settings.Categories() {
		sev, _ := loadResult.Settings.Resolve(category)
		if err := st.Set(category, sev); err != nil {
			return nil, err
		}
	}

	return st, nil
}
