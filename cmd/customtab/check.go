package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errNotCustomTab makes check exit with status 1 without printing an error.
var errNotCustomTab = errors.New("not a custom tabs request")

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check whether an intent document is a Custom Tabs request",
	Long: `Check reports whether the extras of an intent document carry the
Custom Tabs session marker and can be decoded.

Exit codes:
  0 - Custom Tabs request
  1 - Not a Custom Tabs request, or the document could not be read

Examples:
  customtab check intent.yaml
  customtab check intent.json --quiet`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: documentCompletion,
	RunE:              runCheck,
}

var checkQuiet bool

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only set the exit code")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, ctx, err := newApp(cmd)
	if err != nil {
		return err
	}

	ok, err := a.Check(ctx, args[0])
	if err != nil {
		return err
	}

	if !checkQuiet {
		if ok {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a Custom Tabs request\n", args[0])
		} else {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ %s is not a Custom Tabs request\n", args[0])
		}
	}

	if !ok {
		return errNotCustomTab
	}
	return nil
}
