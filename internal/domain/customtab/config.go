// Package customtab turns the extras of a Custom Tabs launch request into a
// Config. Parsing never fails: anything that cannot be decoded is left out
// of the result at the smallest scope containing it.
package customtab

import "github.com/felixgeelhaar/customtab/internal/domain/bundle"

// Config is the display configuration requested by the client app.
type Config struct {
	// ToolbarColor is always opaque; nil means the default color.
	ToolbarColor *bundle.Color
	// CloseButtonIcon is nil when absent or too large.
	CloseButtonIcon     *bundle.Bitmap
	DisableURLBarHiding bool
	ActionButton        *ActionButtonConfig
	ShowShareMenuItem   bool
	// MenuItems is never nil.
	MenuItems     []MenuItem
	ExitAnimation *ExitAnimation
	TitleVisible  bool
	// SessionID is the id of the session binder, empty without a session.
	SessionID string
	// UnsupportedFeatures names extras that were present but are ignored.
	UnsupportedFeatures []string
}

// MenuItem is a custom entry of the browser menu.
type MenuItem struct {
	Name          string
	PendingIntent *bundle.PendingIntent
}

// ActionButtonConfig is the single custom toolbar button.
type ActionButtonConfig struct {
	Icon          *bundle.Bitmap
	Description   string
	PendingIntent *bundle.PendingIntent
}

// ExitAnimation holds the animations to run when the tab is closed.
type ExitAnimation struct {
	PackageName string
	EnterRes    int
	ExitRes     int
}

// HasToolbarColor reports whether a toolbar color was requested.
func (c *Config) HasToolbarColor() bool {
	return c.ToolbarColor != nil
}
