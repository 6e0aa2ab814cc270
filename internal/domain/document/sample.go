package document

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/felixgeelhaar/customtab/internal/domain/customtab"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sample returns a complete intent document for a request with the given
// session id, as a tree ready to be encoded.
func Sample(sessionID string) map[string]any {
	pendingIntent := func(action string) map[string]any {
		return map[string]any{
			bundle.TypeKey: bundle.TypePendingIntent,
			"action":       action,
			"package":      "com.example.app",
		}
	}

	return map[string]any{
		KeyAction: "android.intent.action.VIEW",
		KeyData:   "https://example.com",
		KeyExtras: map[string]any{
			customtab.KeySession: map[string]any{
				bundle.TypeKey: bundle.TypeBinder,
				"id":           sessionID,
			},
			customtab.KeyToolbarColor:       int64(0xFF3F51B5),
			customtab.KeyEnableURLBarHiding: true,
			customtab.KeyTitleVisibility:    customtab.ShowPageTitle,
			customtab.KeyShareMenuItem:      true,
			customtab.KeyActionButtonBundle: map[string]any{
				customtab.KeyIcon: map[string]any{
					bundle.TypeKey: bundle.TypeBitmap,
					"width":        2,
					"height":       2,
					"pixels":       []any{"#FFFFFFFF", "#FF3F51B5", "#FF3F51B5", "#FFFFFFFF"},
				},
				customtab.KeyDescription:   "Bookmark",
				customtab.KeyPendingIntent: pendingIntent("com.example.app.BOOKMARK"),
			},
			customtab.KeyMenuItems: []any{
				map[string]any{
					customtab.KeyMenuItemTitle: "Open in app",
					customtab.KeyPendingIntent: pendingIntent("com.example.app.OPEN"),
				},
				map[string]any{
					customtab.KeyMenuItemTitle: "Report a problem",
					customtab.KeyPendingIntent: pendingIntent("com.example.app.REPORT"),
				},
			},
		},
	}
}

// Encode renders a document tree in the given format.
func Encode(tree map[string]any, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(tree)
	case FormatJSON:
		data, err = json.MarshalIndent(tree, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		data, err = toml.Marshal(tree)
	default:
		return nil, NewFormatUnsupportedError(string(format))
	}

	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", format, err)
	}
	return data, nil
}
