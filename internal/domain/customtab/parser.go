package customtab

import (
	"context"
	"math"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/felixgeelhaar/customtab/internal/ports"
)

// Parser reads Custom Tabs extras. It is stateless and safe to reuse.
type Parser struct {
	logger  ports.Logger
	density float64
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger for parse diagnostics. Without it the parser
// uses the logger attached to the context, if any.
func WithLogger(logger ports.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithDensity sets the display density used to convert dp limits to pixels.
// Non-positive values are ignored.
func WithDensity(density float64) Option {
	return func(p *Parser) {
		if density > 0 {
			p.density = density
		}
	}
}

// NewParser creates a parser with density 1.
func NewParser(opts ...Option) *Parser {
	p := &Parser{density: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsCustomTabRequest reports whether the extras carry the session marker.
// It is false when the extras cannot be decoded.
func (p *Parser) IsCustomTabRequest(ctx context.Context, extras bundle.Source) bool {
	return p.wrap(ctx, extras).Has(KeySession)
}

// Parse builds a Config from the extras. It never fails; undecodable values
// are left out.
func (p *Parser) Parse(ctx context.Context, extras bundle.Source) *Config {
	b := p.wrap(ctx, extras)
	cfg := &Config{MenuItems: []MenuItem{}}

	if !b.Readable() {
		p.debug(ctx, "extras could not be decoded, using defaults")
		return cfg
	}

	cfg.ToolbarColor = p.toolbarColor(b)
	cfg.CloseButtonIcon = p.closeButtonIcon(ctx, b)
	if enabled, ok := b.Bool(KeyEnableURLBarHiding); ok {
		cfg.DisableURLBarHiding = !enabled
	}
	cfg.ActionButton = p.actionButton(ctx, b)
	cfg.ShowShareMenuItem, _ = b.Bool(KeyShareMenuItem)
	cfg.MenuItems = p.menuItems(ctx, b)
	cfg.ExitAnimation = p.exitAnimation(b)
	if state, ok := b.Int(KeyTitleVisibility); ok {
		cfg.TitleVisible = state == ShowPageTitle
	}
	if session, ok := b.Binder(KeySession); ok {
		cfg.SessionID = session.ID
	}
	cfg.UnsupportedFeatures = p.unsupportedFeatures(b)

	return cfg
}

// ActionButton returns the action button configuration, or nil unless the
// icon, description and pending intent all decode.
func (p *Parser) ActionButton(ctx context.Context, extras bundle.Source) *ActionButtonConfig {
	return p.actionButton(ctx, p.wrap(ctx, extras))
}

func (p *Parser) wrap(ctx context.Context, extras bundle.Source) *bundle.SafeBundle {
	opts := []bundle.SafeOption{bundle.WithContext(ctx)}
	if logger := p.loggerFor(ctx); logger != nil {
		opts = append(opts, bundle.WithLogger(logger))
	}
	return bundle.NewSafe(extras, opts...)
}

func (p *Parser) toolbarColor(b *bundle.SafeBundle) *bundle.Color {
	v, ok := b.Int(KeyToolbarColor)
	if !ok {
		return nil
	}
	c := bundle.Color(uint32(v)).Opaque()
	return &c
}

func (p *Parser) closeButtonIcon(ctx context.Context, b *bundle.SafeBundle) *bundle.Bitmap {
	icon, ok := b.Bitmap(KeyCloseButtonIcon)
	if !ok {
		return nil
	}

	maxPx := int(math.Round(closeButtonMaxDP * p.density))
	if icon.Width() > maxPx || icon.Height() > maxPx {
		p.debug(ctx, "ignoring oversized close button icon",
			ports.F("width", icon.Width()),
			ports.F("height", icon.Height()),
			ports.F("max_px", maxPx),
		)
		return nil
	}
	return icon
}

func (p *Parser) actionButton(ctx context.Context, b *bundle.SafeBundle) *ActionButtonConfig {
	ab, ok := b.Bundle(KeyActionButtonBundle)
	if !ok {
		return nil
	}

	icon, hasIcon := ab.Bitmap(KeyIcon)
	description, hasDescription := ab.String(KeyDescription)
	pendingIntent, hasPendingIntent := ab.PendingIntent(KeyPendingIntent)

	if !hasIcon || !hasDescription || !hasPendingIntent {
		p.debug(ctx, "ignoring incomplete action button",
			ports.F("icon", hasIcon),
			ports.F("description", hasDescription),
			ports.F("pending_intent", hasPendingIntent),
		)
		return nil
	}

	return &ActionButtonConfig{
		Icon:          icon,
		Description:   description,
		PendingIntent: pendingIntent,
	}
}

func (p *Parser) menuItems(ctx context.Context, b *bundle.SafeBundle) []MenuItem {
	entries, ok := b.BundleList(KeyMenuItems)
	if !ok {
		return []MenuItem{}
	}

	items := make([]MenuItem, 0, len(entries))
	for i, entry := range entries {
		name, _ := entry.String(KeyMenuItemTitle)
		pendingIntent, hasPendingIntent := entry.PendingIntent(KeyPendingIntent)

		if name == "" || !hasPendingIntent {
			p.debug(ctx, "dropping menu item",
				ports.F("index", i),
				ports.F("name", name),
				ports.F("pending_intent", hasPendingIntent),
			)
			continue
		}

		items = append(items, MenuItem{Name: name, PendingIntent: pendingIntent})
	}
	return items
}

func (p *Parser) exitAnimation(b *bundle.SafeBundle) *ExitAnimation {
	anim, ok := b.Bundle(KeyExitAnimationBundle)
	if !ok {
		return nil
	}

	enter, hasEnter := anim.Int(KeyAnimEnterRes)
	exit, hasExit := anim.Int(KeyAnimExitRes)
	if !hasEnter && !hasExit {
		return nil
	}

	pkg, _ := anim.String(KeyAnimPackageName)
	return &ExitAnimation{PackageName: pkg, EnterRes: enter, ExitRes: exit}
}

func (p *Parser) unsupportedFeatures(b *bundle.SafeBundle) []string {
	var names []string
	for _, f := range unsupportedFeatures {
		if b.Has(f.key) {
			names = append(names, f.name)
		}
	}
	return names
}

func (p *Parser) loggerFor(ctx context.Context) ports.Logger {
	if p.logger != nil {
		return p.logger
	}
	return ports.LoggerFromContext(ctx)
}

func (p *Parser) debug(ctx context.Context, msg string, fields ...ports.Field) {
	if logger := p.loggerFor(ctx); logger != nil {
		logger.Debug(ctx, msg, fields...)
	}
}

var defaultParser = NewParser()

// IsCustomTabIntent reports whether extras form a Custom Tabs request, using
// a default parser.
func IsCustomTabIntent(extras bundle.Source) bool {
	return defaultParser.IsCustomTabRequest(context.Background(), extras)
}

// ParseCustomTabIntent parses extras with a default parser.
func ParseCustomTabIntent(ctx context.Context, extras bundle.Source) *Config {
	return defaultParser.Parse(ctx, extras)
}

// GetActionButtonConfig reads only the action button, with a default parser.
func GetActionButtonConfig(ctx context.Context, extras bundle.Source) *ActionButtonConfig {
	return defaultParser.ActionButton(ctx, extras)
}
