package document_test

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/customtab/internal/domain/customtab"
	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []document.Format{document.FormatYAML, document.FormatJSON, document.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			data, err := document.Encode(document.Sample("session-42"), format)
			require.NoError(t, err)

			intent, err := document.Decode(data, format)
			require.NoError(t, err, string(data))
			assert.Equal(t, "android.intent.action.VIEW", intent.Action)
			require.True(t, customtab.IsCustomTabIntent(intent.Extras))

			cfg := customtab.ParseCustomTabIntent(context.Background(), intent.Extras)
			assert.Equal(t, "session-42", cfg.SessionID)
			assert.True(t, cfg.HasToolbarColor())
			assert.True(t, cfg.ShowShareMenuItem)
			assert.True(t, cfg.TitleVisible)
			assert.False(t, cfg.DisableURLBarHiding)
			require.NotNil(t, cfg.ActionButton)
			assert.Equal(t, "Bookmark", cfg.ActionButton.Description)
			assert.Equal(t, 2, cfg.ActionButton.Icon.Width())
			require.Len(t, cfg.MenuItems, 2)
			assert.Equal(t, "Open in app", cfg.MenuItems[0].Name)
			assert.Equal(t, "Report a problem", cfg.MenuItems[1].Name)
			assert.Nil(t, cfg.UnsupportedFeatures)
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := document.Encode(document.Sample("x"), document.Format("xml"))
	require.Error(t, err)
	assert.True(t, document.IsUserError(err, document.ErrCodeFormatUnsupported))
}
