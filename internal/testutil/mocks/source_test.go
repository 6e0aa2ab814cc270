package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_PassesThrough(t *testing.T) {
	t.Parallel()

	src := NewSource(bundle.NewMap().Put("a", 1))

	v, ok, err := src.Lookup("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	keys, err := src.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)
	assert.Equal(t, []string{"a"}, src.Lookups())
}

func TestSource_FailKey(t *testing.T) {
	t.Parallel()

	boom := errors.New("unparcelable")
	src := NewSource(bundle.NewMap().Put("a", 1).Put("b", 2)).FailKey("a", boom)

	_, _, err := src.Lookup("a")
	assert.ErrorIs(t, err, boom)

	v, ok, err := src.Lookup("b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestSource_FailAll(t *testing.T) {
	t.Parallel()

	boom := errors.New("broken")
	src := NewSource(nil).FailAll(boom)

	_, _, err := src.Lookup("anything")
	assert.ErrorIs(t, err, boom)
	_, err = src.Keys()
	assert.ErrorIs(t, err, boom)
}

func TestSource_PanicOnKey(t *testing.T) {
	t.Parallel()

	src := NewSource(nil).PanicOnKey("x", "Haha")
	assert.PanicsWithValue(t, "Haha", func() { _, _, _ = src.Lookup("x") })
}

func TestLogger_Records(t *testing.T) {
	t.Parallel()

	logger := NewLogger()
	ctx := context.Background()

	logger.Debug(ctx, "first", ports.F("key", "k"))
	logger.Warn(ctx, "second")

	entries := logger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, ports.LevelDebug, entries[0].Level)
	assert.Equal(t, "k", entries[0].Fields["key"])
	assert.Equal(t, []string{"second"}, logger.Messages(ports.LevelWarn))
}
