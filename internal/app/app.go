// Package app provides the application logic behind the customtab CLI:
// loading intent documents, parsing their extras and rendering the result.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/felixgeelhaar/customtab/internal/adapters/filesystem"
	"github.com/felixgeelhaar/customtab/internal/adapters/logging"
	"github.com/felixgeelhaar/customtab/internal/domain/customtab"
	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"github.com/google/uuid"
)

// ErrCodeDocumentExists is reported when init would overwrite a file.
const ErrCodeDocumentExists = "DOCUMENT_EXISTS"

// App is the main application orchestrator.
type App struct {
	fs      ports.FileSystem
	logger  ports.Logger
	parser  *customtab.Parser
	density float64
	newID   func() string
	out     io.Writer
}

// Option configures an App.
type Option func(*App)

// WithFileSystem replaces the real filesystem.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger ports.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithDensity sets the display density passed to the parser.
func WithDensity(density float64) Option {
	return func(a *App) {
		a.density = density
	}
}

// WithIDGenerator replaces the session id generator used by Init.
func WithIDGenerator(newID func() string) Option {
	return func(a *App) {
		a.newID = newID
	}
}

// New creates a new App writing its reports to out.
func New(out io.Writer, opts ...Option) *App {
	a := &App{
		fs:      filesystem.NewRealFileSystem(),
		logger:  logging.NewNopLogger(),
		density: 1,
		newID:   uuid.NewString,
		out:     out,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.parser = customtab.NewParser(
		customtab.WithLogger(a.logger),
		customtab.WithDensity(a.density),
	)
	return a
}

// Inspection is the result of inspecting an intent document.
type Inspection struct {
	Path       string
	Action     string
	Data       string
	Recognized bool
	Config     *customtab.Config
}

// Inspect loads the document at path and parses its extras. Errors are
// reported only for documents that cannot be read at all; undecodable extras
// produce an unrecognized inspection with a default config.
func (a *App) Inspect(ctx context.Context, path string) (*Inspection, error) {
	intent, err := document.Load(a.fs, path)
	if err != nil {
		return nil, err
	}

	insp := &Inspection{
		Path:       path,
		Action:     intent.Action,
		Data:       intent.Data,
		Recognized: a.parser.IsCustomTabRequest(ctx, intent.Extras),
		Config:     a.parser.Parse(ctx, intent.Extras),
	}

	a.logger.Info(ctx, "inspected intent document",
		ports.F("path", path),
		ports.F("recognized", insp.Recognized),
		ports.F("menu_items", len(insp.Config.MenuItems)),
		ports.F("action_button", insp.Config.ActionButton != nil),
	)
	return insp, nil
}

// Check reports whether the document at path is a Custom Tabs request.
func (a *App) Check(ctx context.Context, path string) (bool, error) {
	insp, err := a.Inspect(ctx, path)
	if err != nil {
		return false, err
	}
	return insp.Recognized, nil
}

// Init writes a sample intent document and returns its path. An empty path
// writes intent.<format> in the current directory.
func (a *App) Init(ctx context.Context, path string, format document.Format, force bool) (string, error) {
	if path == "" {
		path = "intent" + format.Extension()
	}

	if a.fs.Exists(path) && !force {
		return "", &document.UserError{
			Code:       ErrCodeDocumentExists,
			Message:    fmt.Sprintf("file already exists: %s", path),
			Context:    path,
			Suggestion: "Use --force to overwrite it, or choose another path with --output.",
		}
	}

	data, err := document.Encode(document.Sample(a.newID()), format)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := a.fs.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.logger.Info(ctx, "wrote sample intent document", ports.F("path", path), ports.F("format", string(format)))
	return path, nil
}
