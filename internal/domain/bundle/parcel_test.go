package bundle

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustParcel(t *testing.T, doc string) *Parcel {
	t.Helper()

	p, err := ParseParcel([]byte(doc))
	require.NoError(t, err)
	return p
}

func TestParcel_Scalars(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
name: menuitem1
count: 3
color: 0xFFFF0000
negative: -65536
enabled: true
ratio: 1.5
nothing: null
`)

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "count", "color", "negative", "enabled", "ratio", "nothing"}, keys)

	tests := []struct {
		key  string
		want any
	}{
		{"name", "menuitem1"},
		{"count", 3},
		{"color", 0xFFFF0000},
		{"negative", -65536},
		{"enabled", true},
		{"ratio", 1.5},
		{"nothing", nil},
	}
	for _, tt := range tests {
		v, ok, err := p.Lookup(tt.key)
		require.NoError(t, err, tt.key)
		assert.True(t, ok, tt.key)
		assert.Equal(t, tt.want, v, tt.key)
	}
}

func TestParcel_TypedValues(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
session: {"@type": binder, id: abc}
callback: {"@type": pending_intent, id: pi-1, action: ACTION, package: com.example}
tint: {"@type": color, value: "#3F51B5"}
icon:
  "@type": bitmap
  width: 1
  height: 1
  pixels: ["#FFFF0000"]
`)

	v, _, err := p.Lookup("session")
	require.NoError(t, err)
	assert.Equal(t, &Binder{ID: "abc"}, v)

	v, _, _ = p.Lookup("callback")
	assert.Equal(t, &PendingIntent{ID: "pi-1", Action: "ACTION", Package: "com.example"}, v)

	v, _, _ = p.Lookup("tint")
	assert.Equal(t, Color(0xFF3F51B5), v)

	v, _, _ = p.Lookup("icon")
	bm, ok := v.(*Bitmap)
	require.True(t, ok)
	assert.Equal(t, 1, bm.Width())
	assert.Equal(t, ColorRed, bm.Pixel(0, 0))
}

func TestParcel_PNGBitmap(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	p := mustParcel(t, "icon: {\"@type\": bitmap, png: "+base64.StdEncoding.EncodeToString(buf.Bytes())+"}\n")

	v, ok, err := p.Lookup("icon")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ColorRed, v.(*Bitmap).Pixel(0, 0))
}

func TestParcel_NestedBundlesAreLazy(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
marker: null
nested:
  garbage: {"@type": unparcelable}
`)

	v, ok, err := p.Lookup("marker")
	require.NoError(t, err, "a broken nested bundle must not break its parent")
	assert.True(t, ok)
	assert.Nil(t, v)

	v, ok, err = p.Lookup("nested")
	require.NoError(t, err)
	require.True(t, ok)

	nested, isParcel := v.(*Parcel)
	require.True(t, isParcel)

	_, _, err = nested.Lookup("garbage")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = nested.Keys()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestParcel_BrokenEntryBreaksWholeContainer(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
marker: null
garbage: {"@type": unparcelable}
`)

	_, ok, err := p.Lookup("marker")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `"garbage"`)

	_, err = p.Keys()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestParcel_ListOfBundles(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
items:
  - title: one
  - title: two
  - plain
`)

	v, ok, err := p.Lookup("items")
	require.NoError(t, err)
	require.True(t, ok)

	items, isList := v.([]any)
	require.True(t, isList)
	require.Len(t, items, 3)
	assert.IsType(t, &Parcel{}, items[0])
	assert.Equal(t, "plain", items[2])

	title, _, err := items[1].(*Parcel).Lookup("title")
	require.NoError(t, err)
	assert.Equal(t, "two", title)
}

func TestParcel_BrokenListItemBreaksContainer(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
items:
  - {"@type": bitmap, width: 2, height: 2, pixels: ["#FF0000"]}
`)

	_, _, err := p.Lookup("items")
	assert.ErrorIs(t, err, ErrInvalidBitmap)
	assert.Contains(t, err.Error(), "item 0")
}

func TestParcel_NotAMapping(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, "- just\n- a list\n")

	_, _, err := p.Lookup("anything")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParcel_EmptyDocuments(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "null", "{}"} {
		p := mustParcel(t, doc)
		keys, err := p.Keys()
		require.NoError(t, err, "doc %q", doc)
		assert.Empty(t, keys, "doc %q", doc)
	}

	keys, err := NewParcel(nil).Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestParcel_Aliases(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `
base: &cb {"@type": pending_intent, action: SHARE}
copy: *cb
`)

	a, _, err := p.Lookup("base")
	require.NoError(t, err)
	b, _, _ := p.Lookup("copy")
	assert.Equal(t, a, b)
}

// aliasBomb nests anchors so that the last one expands to 10^levels scalars.
func aliasBomb(levels int) string {
	var sb strings.Builder
	sb.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		prev := fmt.Sprintf("*a%d", i-1)
		fmt.Fprintf(&sb, "a%d: &a%d [%s]\n", i, i, strings.Repeat(prev+", ", 9)+prev)
	}
	return sb.String()
}

func indent(doc string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

func TestParcel_AliasExpansionIsBounded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "top level", doc: "marker: null\n" + aliasBomb(9)},
		{name: "inside typed value", doc: "defs:\n" + indent(aliasBomb(8)) + "icon: {\"@type\": bitmap, width: 1, height: 1, pixels: *a8}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := mustParcel(t, tt.doc)

			start := time.Now()
			_, _, err := p.Lookup("marker")
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Less(t, time.Since(start), 5*time.Second)

			keys, err := p.Keys()
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, keys)
		})
	}
}

func TestParcel_AliasBudgetCoversNestedBundles(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, "marker: null\nnested:\n"+indent(aliasBomb(9)))

	// The outer bundle only holds the nested one encoded.
	v, ok, err := p.Lookup("nested")
	require.NoError(t, err)
	require.True(t, ok)

	nested, ok := v.(*Parcel)
	require.True(t, ok)
	_, _, err = nested.Lookup("a0")
	assert.ErrorIs(t, err, ErrMalformed)

	_, ok, err = p.Lookup("marker")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParcel_DecodesOnce(t *testing.T) {
	t.Parallel()

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: 1\n"), &node))
	p := NewParcel(&node)

	v1, _, _ := p.Lookup("a")
	// Mutating the source after the first read must not change decoded values.
	node.Content[0].Content[1].Value = "2"
	v2, _, _ := p.Lookup("a")

	assert.Equal(t, v1, v2)
}

func TestParseParcel_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseParcel([]byte("a: [unterminated"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParcel_JSON(t *testing.T) {
	t.Parallel()

	p := mustParcel(t, `{"a": 1, "b": {"@type": "binder", "id": "x"}, "c": [{"d": true}]}`)

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
