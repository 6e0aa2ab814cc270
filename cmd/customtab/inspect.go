package main

import (
	"github.com/felixgeelhaar/customtab/internal/app"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show the Custom Tabs configuration of an intent document",
	Long: `Inspect parses the extras of an intent document and prints the
resulting configuration: toolbar color, close button, action button,
menu items, exit animation and any extras that are recognised but
not supported.

The document format is detected from the file extension (.yaml, .yml,
.json or .toml).

Examples:
  customtab inspect intent.yaml
  customtab inspect intent.toml --format json`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: documentCompletion,
	RunE:              runInspect,
}

var inspectFormat string

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", string(app.OutputText), "Output format (text, json, yaml)")
	_ = inspectCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := app.ParseOutputFormat(inspectFormat)
	if err != nil {
		return err
	}

	a, ctx, err := newApp(cmd)
	if err != nil {
		return err
	}

	insp, err := a.Inspect(ctx, args[0])
	if err != nil {
		return err
	}
	return a.Render(insp, format)
}
