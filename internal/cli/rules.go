package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
	"github.com/yaklabco/ruledoc/pkg/rules/builtin"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Group       string `json:"group"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Version     string `json:"version"`
	Recommended bool   `json:"recommended"`
	FixKind     string `json:"fixKind"`
	Language    string `json:"language"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules documentation is generated for",
		Long: `List all registered rules with their group, version, recommended
status, fix kind, and language.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := rules.NewRegistry()
			if err := builtin.Register(registry, jsonlang.NewFrontend()); err != nil {
				return fmt.Errorf("register rules: %w", err)
			}

			if flags.format == formatJSON {
				return outputRulesJSON(registry)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			out := cmd.OutOrStdout()
			for _, group := range registry.Groups() {
				metas := registry.Rules(group)
				fmt.Fprint(out, styles.FormatGroupHeader(group, len(metas)))
				for _, meta := range metas {
					fmt.Fprint(out, styles.FormatRule(meta))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(registry *rules.Registry) error {
	var infos []ruleInfo
	for _, group := range registry.Groups() {
		for _, meta := range registry.Rules(group) {
			infos = append(infos, ruleInfo{
				Group:       meta.Group,
				Name:        meta.Name,
				Category:    meta.Category(),
				Version:     meta.Version,
				Recommended: meta.Recommended,
				FixKind:     meta.FixKind.String(),
				Language:    meta.Language.String(),
			})
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
