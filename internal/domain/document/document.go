// Package document reads and writes intent documents: the action, data URI
// and extras of a launch request, encoded as YAML, JSON or TOML.
package document

import (
	"fmt"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Top-level document keys.
const (
	KeyAction = "action"
	KeyData   = "data"
	KeyExtras = "extras"
)

// Intent is a decoded launch request.
type Intent struct {
	Action string
	Data   string
	// Extras is never nil. It stays encoded until read, so a broken value
	// surfaces when the extras are first accessed, not here.
	Extras bundle.Source
}

// Decode parses an intent document. Only syntax errors and a non-mapping
// document are reported; problems inside the extras are left to the reader.
func Decode(data []byte, format Format) (*Intent, error) {
	intent, err := decode(data, format)
	if err != nil {
		if ue := GetUserError(err); ue != nil {
			return nil, ue
		}
		return nil, NewParseError("", err)
	}
	return intent, nil
}

// Load reads and decodes the intent document at path. The format is
// detected from the file extension.
func Load(fs ports.FileSystem, path string) (*Intent, error) {
	if !fs.Exists(path) {
		return nil, NewDocumentNotFoundError(path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent document %s: %w", path, err)
	}

	intent, err := decode(data, DetectFormat(path))
	if err != nil {
		if ue := GetUserError(err); ue != nil {
			return nil, ue.WithContext(path)
		}
		return nil, NewParseError(path, err)
	}
	return intent, nil
}

func decode(data []byte, format Format) (*Intent, error) {
	var root yaml.Node

	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML, so both go through the same parser.
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
	case FormatTOML:
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
		if err := root.Encode(tree); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	default:
		return nil, NewFormatUnsupportedError(string(format))
	}

	return fromNode(&root)
}

func fromNode(n *yaml.Node) (*Intent, error) {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, &UserError{
			Code:       ErrCodeDocumentInvalid,
			Message:    "intent document must be a mapping",
			Suggestion: "Start the document with 'action:', 'data:' and 'extras:' keys.",
		}
	}

	intent := &Intent{Extras: bundle.NewMap()}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		switch k.Value {
		case KeyAction, KeyData:
			if v.Kind != yaml.ScalarNode {
				return nil, &UserError{
					Code:       ErrCodeDocumentInvalid,
					Message:    fmt.Sprintf("'%s' must be a string", k.Value),
					Context:    fmt.Sprintf("line %d", v.Line),
					Suggestion: fmt.Sprintf("Write '%s' as a plain value, e.g. %s: https://example.com", k.Value, k.Value),
				}
			}
			if k.Value == KeyAction {
				intent.Action = v.Value
			} else {
				intent.Data = v.Value
			}
		case KeyExtras:
			intent.Extras = extrasFrom(v)
		}
	}

	return intent, nil
}

func extrasFrom(n *yaml.Node) bundle.Source {
	switch {
	case n.Kind == yaml.AliasNode && n.Alias != nil:
		return extrasFrom(n.Alias)
	case n.Kind == yaml.MappingNode:
		return bundle.NewParcel(n)
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null":
		return bundle.NewMap()
	default:
		return bundle.Unreadable(fmt.Errorf("%w: extras at line %d is not a mapping", bundle.ErrMalformed, n.Line))
	}
}
