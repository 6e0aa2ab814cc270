package main

import (
	"fmt"

	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample intent document",
	Long: `Init writes a complete sample intent document with a fresh session id.
Use it as a starting point for describing a launch request.

Examples:
  customtab init
  customtab init --format toml
  customtab init --output requests/bookmark.json --format json`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initOutput string
	initFormat string
	initForce  bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output path (default: intent.<format>)")
	initCmd.Flags().StringVarP(&initFormat, "format", "f", string(document.FormatYAML), "Document format (yaml, json, toml)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	_ = initCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "json", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runInit(cmd *cobra.Command, _ []string) error {
	format, err := document.ParseFormat(initFormat)
	if err != nil {
		return err
	}

	a, ctx, err := newApp(cmd)
	if err != nil {
		return err
	}

	path, err := a.Init(ctx, initOutput, format, initForce)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Inspect it with: customtab inspect %s\n", path)
	return nil
}
