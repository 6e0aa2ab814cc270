package customtab

import "github.com/felixgeelhaar/customtab/internal/domain/bundle"

// IntentBuilder composes Custom Tabs extras the way a client app does.
type IntentBuilder struct {
	session   *bundle.Binder
	extras    *bundle.Map
	menuItems []any
}

// NewIntentBuilder creates a builder without a session.
func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{extras: bundle.NewMap()}
}

// SetSession associates the request with a session binder.
func (b *IntentBuilder) SetSession(session *bundle.Binder) *IntentBuilder {
	b.session = session
	return b
}

// SetToolbarColor sets the toolbar color.
func (b *IntentBuilder) SetToolbarColor(c bundle.Color) *IntentBuilder {
	b.extras.Put(KeyToolbarColor, int(c))
	return b
}

// SetSecondaryToolbarColor sets the bottom toolbar color.
func (b *IntentBuilder) SetSecondaryToolbarColor(c bundle.Color) *IntentBuilder {
	b.extras.Put(KeySecondaryToolbarColor, int(c))
	return b
}

// EnableURLBarHiding lets the browser hide the URL bar on scroll.
func (b *IntentBuilder) EnableURLBarHiding(enabled bool) *IntentBuilder {
	b.extras.Put(KeyEnableURLBarHiding, enabled)
	return b
}

// SetCloseButtonIcon replaces the default close button icon.
func (b *IntentBuilder) SetCloseButtonIcon(icon *bundle.Bitmap) *IntentBuilder {
	b.extras.Put(KeyCloseButtonIcon, icon)
	return b
}

// SetShowTitle controls whether the page title is shown in the toolbar.
func (b *IntentBuilder) SetShowTitle(show bool) *IntentBuilder {
	state := NoTitle
	if show {
		state = ShowPageTitle
	}
	b.extras.Put(KeyTitleVisibility, state)
	return b
}

// AddMenuItem appends a menu entry. A nil pendingIntent is stored as is.
func (b *IntentBuilder) AddMenuItem(label string, pendingIntent *bundle.PendingIntent) *IntentBuilder {
	item := bundle.NewMap().Put(KeyMenuItemTitle, label)
	if pendingIntent == nil {
		item.Put(KeyPendingIntent, nil)
	} else {
		item.Put(KeyPendingIntent, pendingIntent)
	}
	b.menuItems = append(b.menuItems, item)
	return b
}

// AddDefaultShareMenuItem asks the browser to show its own share entry.
func (b *IntentBuilder) AddDefaultShareMenuItem() *IntentBuilder {
	b.extras.Put(KeyShareMenuItem, true)
	return b
}

// SetActionButton sets the single toolbar action button.
func (b *IntentBuilder) SetActionButton(icon *bundle.Bitmap, description string, pendingIntent *bundle.PendingIntent) *IntentBuilder {
	b.extras.Put(KeyActionButtonBundle, bundle.NewMap().
		Put(KeyIcon, icon).
		Put(KeyDescription, description).
		Put(KeyPendingIntent, pendingIntent))
	return b
}

// SetExitAnimations sets the animations run when the tab closes.
func (b *IntentBuilder) SetExitAnimations(packageName string, enterRes, exitRes int) *IntentBuilder {
	b.extras.Put(KeyExitAnimationBundle, bundle.NewMap().
		Put(KeyAnimPackageName, packageName).
		Put(KeyAnimEnterRes, enterRes).
		Put(KeyAnimExitRes, exitRes))
	return b
}

// Put stores an arbitrary extra, for values the builder has no setter for.
func (b *IntentBuilder) Put(key string, value any) *IntentBuilder {
	b.extras.Put(key, value)
	return b
}

// Build returns the extras. The session marker is always first and is nil
// when no session was set. Each call returns a new bundle.
func (b *IntentBuilder) Build() *bundle.Map {
	out := bundle.NewMap()
	if b.session != nil {
		out.Put(KeySession, b.session)
	} else {
		out.Put(KeySession, nil)
	}

	keys, _ := b.extras.Keys()
	for _, k := range keys {
		v, _, _ := b.extras.Lookup(k)
		out.Put(k, v)
	}

	if len(b.menuItems) > 0 {
		out.Put(KeyMenuItems, append([]any(nil), b.menuItems...))
	}
	return out
}
