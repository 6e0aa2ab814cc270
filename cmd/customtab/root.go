package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/customtab/internal/adapters/filesystem"
	"github.com/felixgeelhaar/customtab/internal/adapters/logging"
	"github.com/felixgeelhaar/customtab/internal/app"
	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	settingsFile string
	verbose      bool
	logJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "customtab",
	Short: "Inspect Custom Tabs launch requests",
	Long: `customtab reads an intent document (YAML, JSON or TOML) describing a
browser launch request and reports the Custom Tabs configuration a
browser would apply to it.

Parsing never fails: extras that cannot be decoded are left out of the
result, and a request whose extras are unreadable is reported as not
being a Custom Tabs request.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default: $"+app.SettingsEnv+" or ~/.config/customtab/settings.ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output and debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON lines")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

// newApp builds the application from the settings file and global flags.
// Flags override settings.
func newApp(cmd *cobra.Command) (*app.App, context.Context, error) {
	fs := filesystem.NewRealFileSystem()

	path := settingsFile
	if path == "" {
		path = app.DefaultSettingsPath()
	}
	settings, err := app.LoadSettings(fs, path)
	if err != nil {
		return nil, nil, err
	}

	level := settings.LogLevel
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
		logging.WithJSONFormat(settings.LogJSON || logJSON),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.ContextWithLogger(ctx, logger)

	a := app.New(cmd.OutOrStdout(),
		app.WithFileSystem(fs),
		app.WithLogger(logger),
		app.WithDensity(settings.Density),
	)
	return a, ctx, nil
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *document.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("settings", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ini"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// documentCompletion completes intent document paths.
func documentCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}
