package testutil

import (
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// DocumentBuilder builds YAML intent documents for tests.
type DocumentBuilder struct {
	action string
	data   string
	extras map[string]any
	raw    string
}

// NewDocumentBuilder creates a builder for a VIEW request with no extras.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		action: "android.intent.action.VIEW",
		data:   "https://example.com",
	}
}

// WithData sets the data URI.
func (b *DocumentBuilder) WithData(data string) *DocumentBuilder {
	b.data = data
	return b
}

// WithExtra sets an extra. Values are encoded as document values; use the
// typed helpers below for binders, pending intents and bitmaps.
func (b *DocumentBuilder) WithExtra(key string, value any) *DocumentBuilder {
	if b.extras == nil {
		b.extras = make(map[string]any)
	}
	b.extras[key] = value
	return b
}

// WithRawExtras replaces the extras with a literal YAML value. It is used to
// write documents the typed builder cannot express.
func (b *DocumentBuilder) WithRawExtras(yamlValue string) *DocumentBuilder {
	b.raw = yamlValue
	return b
}

// Build renders the document.
func (b *DocumentBuilder) Build(t testing.TB) string {
	t.Helper()

	doc := map[string]any{"action": b.action, "data": b.data}
	if b.extras != nil && b.raw == "" {
		doc["extras"] = b.extras
	}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	if b.raw != "" {
		return string(out) + "extras: " + b.raw + "\n"
	}
	return string(out)
}

// Binder returns the document encoding of a binder.
func Binder(id string) map[string]any {
	return map[string]any{bundle.TypeKey: bundle.TypeBinder, "id": id}
}

// PendingIntent returns the document encoding of a pending intent.
func PendingIntent(action string) map[string]any {
	return map[string]any{bundle.TypeKey: bundle.TypePendingIntent, "action": action}
}

// SolidBitmap returns the document encoding of a width x height bitmap
// filled with c.
func SolidBitmap(width, height int, c bundle.Color) map[string]any {
	pixels := make([]string, width*height)
	for i := range pixels {
		pixels[i] = c.Hex()
	}
	return map[string]any{
		bundle.TypeKey: bundle.TypeBitmap,
		"width":        width,
		"height":       height,
		"pixels":       pixels,
	}
}
