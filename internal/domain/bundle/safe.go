package bundle

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/customtab/internal/ports"
)

// SafeBundle is a read-only view over a Source that never fails. Decode
// errors and panics raised by the Source are logged and reported as absent.
type SafeBundle struct {
	src    Source
	logger ports.Logger
	ctx    context.Context
}

// SafeOption configures a SafeBundle.
type SafeOption func(*SafeBundle)

// WithLogger sets the logger used to report recovered failures.
func WithLogger(logger ports.Logger) SafeOption {
	return func(b *SafeBundle) {
		b.logger = logger
	}
}

// WithContext sets the context passed to the logger.
func WithContext(ctx context.Context) SafeOption {
	return func(b *SafeBundle) {
		b.ctx = ctx
	}
}

// NewSafe wraps src. A nil src is an empty bundle. Wrapping a SafeBundle
// without options returns it unchanged.
func NewSafe(src Source, opts ...SafeOption) *SafeBundle {
	if sb, ok := src.(*SafeBundle); ok {
		if len(opts) == 0 {
			return sb
		}
		src = sb.src
	}
	if src == nil {
		src = NewMap()
	}

	b := &SafeBundle{src: src, ctx: context.Background()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Lookup implements Source. The returned error is always nil.
func (b *SafeBundle) Lookup(key string) (any, bool, error) {
	v, ok := b.lookup(key)
	return v, ok, nil
}

// Keys implements Source. An unreadable bundle has no keys; the returned
// error is always nil.
func (b *SafeBundle) Keys() ([]string, error) {
	keys, _ := b.keys()
	return keys, nil
}

// Readable reports whether the underlying container can be decoded.
func (b *SafeBundle) Readable() bool {
	_, ok := b.keys()
	return ok
}

// Has reports whether key is present. Keys holding nil count as present.
func (b *SafeBundle) Has(key string) bool {
	_, ok := b.lookup(key)
	return ok
}

// TryGet returns the value under key if it is present and of type T.
func TryGet[T any](b *SafeBundle, key string) (T, bool) {
	var zero T

	v, ok := b.lookup(key)
	if !ok || v == nil {
		return zero, false
	}

	t, ok := v.(T)
	if !ok {
		b.debug("bundle value has unexpected type",
			ports.F("key", key),
			ports.F("want", fmt.Sprintf("%T", zero)),
			ports.F("got", fmt.Sprintf("%T", v)),
		)
		return zero, false
	}
	return t, true
}

// String returns a string value.
func (b *SafeBundle) String(key string) (string, bool) {
	return TryGet[string](b, key)
}

// Bool returns a boolean value.
func (b *SafeBundle) Bool(key string) (bool, bool) {
	return TryGet[bool](b, key)
}

// Int returns an integer value. Colors are accepted and returned as their
// packed ARGB value.
func (b *SafeBundle) Int(key string) (int, bool) {
	v, ok := b.lookup(key)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case Color:
		return int(n), true
	default:
		if v != nil {
			b.debug("bundle value is not an integer", ports.F("key", key), ports.F("got", fmt.Sprintf("%T", v)))
		}
		return 0, false
	}
}

// Bitmap returns a bitmap value.
func (b *SafeBundle) Bitmap(key string) (*Bitmap, bool) {
	bm, ok := TryGet[*Bitmap](b, key)
	return bm, ok && bm != nil
}

// PendingIntent returns a callback handle.
func (b *SafeBundle) PendingIntent(key string) (*PendingIntent, bool) {
	pi, ok := TryGet[*PendingIntent](b, key)
	return pi, ok && pi != nil
}

// Binder returns a binder handle.
func (b *SafeBundle) Binder(key string) (*Binder, bool) {
	binder, ok := TryGet[*Binder](b, key)
	return binder, ok && binder != nil
}

// Bundle returns a nested bundle wrapped with the same logger and context.
func (b *SafeBundle) Bundle(key string) (*SafeBundle, bool) {
	src, ok := TryGet[Source](b, key)
	if !ok {
		return nil, false
	}
	return b.child(src), true
}

// BundleList returns the nested bundles stored in a list under key. Items
// that are not bundles are skipped.
func (b *SafeBundle) BundleList(key string) ([]*SafeBundle, bool) {
	v, ok := b.lookup(key)
	if !ok || v == nil {
		return nil, false
	}

	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []Source:
		items = make([]any, len(list))
		for i, s := range list {
			items[i] = s
		}
	default:
		b.debug("bundle value is not a list", ports.F("key", key), ports.F("got", fmt.Sprintf("%T", v)))
		return nil, false
	}

	out := make([]*SafeBundle, 0, len(items))
	for i, item := range items {
		src, isBundle := item.(Source)
		if !isBundle || src == nil {
			b.debug("skipping non-bundle list item", ports.F("key", key), ports.F("index", i))
			continue
		}
		out = append(out, b.child(src))
	}
	return out, true
}

func (b *SafeBundle) child(src Source) *SafeBundle {
	if sb, ok := src.(*SafeBundle); ok {
		src = sb.src
	}
	return &SafeBundle{src: src, logger: b.logger, ctx: b.ctx}
}

func (b *SafeBundle) lookup(key string) (value any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.warn("recovered panic while reading bundle", ports.F("key", key), ports.F("panic", fmt.Sprint(r)))
			value, ok = nil, false
		}
	}()

	v, present, err := b.src.Lookup(key)
	if err != nil {
		b.debug("bundle could not be decoded", ports.F("key", key), ports.F("error", err))
		return nil, false
	}
	return v, present
}

func (b *SafeBundle) keys() (keys []string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.warn("recovered panic while listing bundle keys", ports.F("panic", fmt.Sprint(r)))
			keys, ok = nil, false
		}
	}()

	k, err := b.src.Keys()
	if err != nil {
		b.debug("bundle could not be decoded", ports.F("error", err))
		return nil, false
	}
	return k, true
}

func (b *SafeBundle) debug(msg string, fields ...ports.Field) {
	if b.logger != nil {
		b.logger.Debug(b.ctx, msg, fields...)
	}
}

func (b *SafeBundle) warn(msg string, fields ...ports.Field) {
	if b.logger != nil {
		b.logger.Warn(b.ctx, msg, fields...)
	}
}

var _ Source = (*SafeBundle)(nil)
