package bundle

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// TypeKey marks a mapping as a typed value instead of a nested bundle.
const TypeKey = "@type"

// Value type names accepted under TypeKey.
const (
	TypeBinder        = "binder"
	TypeBitmap        = "bitmap"
	TypeColor         = "color"
	TypePendingIntent = "pending_intent"
)

var (
	// ErrUnknownType is returned for a typed value whose type is not known.
	ErrUnknownType = errors.New("unknown value type")
	// ErrMalformed is returned when the encoded structure is not a bundle.
	ErrMalformed = errors.New("malformed bundle")
)

// Alias expansion is bounded by a node budget shared by a parcel and every
// bundle nested in it.
const (
	aliasExpansionRatio = 10
	minDecodeBudget     = 10000
)

// Parcel is a Source backed by an encoded YAML mapping. It is decoded once,
// on first access.
type Parcel struct {
	node   *yaml.Node
	budget *decodeBudget

	once   sync.Once
	keys   []string
	values map[string]any
	err    error
}

// NewParcel wraps an encoded mapping node. A document node is unwrapped; a
// nil or empty document is an empty bundle.
func NewParcel(node *yaml.Node) *Parcel {
	return &Parcel{node: node}
}

// ParseParcel parses YAML (or JSON) text into a Parcel. Only syntax errors
// are reported here; decode errors surface on first access.
func ParseParcel(data []byte) (*Parcel, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return NewParcel(&doc), nil
}

// Lookup implements Source.
func (p *Parcel) Lookup(key string) (any, bool, error) {
	p.once.Do(p.unparcel)
	if p.err != nil {
		return nil, false, p.err
	}
	v, ok := p.values[key]
	return v, ok, nil
}

// Keys implements Source and returns keys in document order.
func (p *Parcel) Keys() ([]string, error) {
	p.once.Do(p.unparcel)
	if p.err != nil {
		return nil, p.err
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out, nil
}

func (p *Parcel) unparcel() {
	p.values = make(map[string]any)

	node := p.node
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			node = nil
		} else {
			node = node.Content[0]
		}
	}
	if node == nil || node.Kind == 0 {
		return
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return
	}
	if node.Kind != yaml.MappingNode {
		p.fail(fmt.Errorf("%w: expected mapping at line %d, got %s", ErrMalformed, node.Line, kindName(node.Kind)))
		return
	}
	if p.budget == nil {
		p.budget = newDecodeBudget(node)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			p.fail(fmt.Errorf("%w: non-scalar key at line %d", ErrMalformed, k.Line))
			return
		}

		value, err := p.budget.decodeValue(v)
		if err != nil {
			p.fail(fmt.Errorf("decode %q: %w", k.Value, err))
			return
		}

		if _, exists := p.values[k.Value]; !exists {
			p.keys = append(p.keys, k.Value)
		}
		p.values[k.Value] = value
	}
}

func (p *Parcel) fail(err error) {
	p.err = err
	p.keys = nil
	p.values = nil
}

type decodeBudget struct {
	remaining atomic.Int64
}

func newDecodeBudget(root *yaml.Node) *decodeBudget {
	limit := int64(countNodes(root)) * aliasExpansionRatio
	if limit < minDecodeBudget {
		limit = minDecodeBudget
	}
	b := &decodeBudget{}
	b.remaining.Store(limit)
	return b
}

// countNodes counts the encoded nodes under n without following aliases.
func countNodes(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Content {
		count += countNodes(c)
	}
	return count
}

func (b *decodeBudget) spend(n *yaml.Node) error {
	if b.remaining.Add(-1) < 0 {
		return fmt.Errorf("%w: alias expansion too large at line %d", ErrMalformed, n.Line)
	}
	return nil
}

// spendTree charges every node reachable from n, following aliases.
func (b *decodeBudget) spendTree(n *yaml.Node) error {
	if err := b.spend(n); err != nil {
		return err
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return b.spendTree(n.Alias)
	}
	for _, c := range n.Content {
		if err := b.spendTree(c); err != nil {
			return err
		}
	}
	return nil
}

func (b *decodeBudget) decodeValue(n *yaml.Node) (any, error) {
	if err := b.spend(n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("%w: dangling alias at line %d", ErrMalformed, n.Line)
		}
		return b.decodeValue(n.Alias)
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.MappingNode:
		typ, ok := typeOf(n)
		if !ok {
			// Nested bundles stay encoded until read.
			return &Parcel{node: n, budget: b}, nil
		}
		if err := b.spendTree(n); err != nil {
			return nil, err
		}
		return decodeTyped(typ, n)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := b.decodeValue(c)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, v)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s at line %d", ErrMalformed, kindName(n.Kind), n.Line)
	}
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!binary":
		var b []byte
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return n.Value, nil
	}
}

func typeOf(n *yaml.Node) (string, bool) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == TypeKey {
			return n.Content[i+1].Value, true
		}
	}
	return "", false
}

func decodeTyped(typ string, n *yaml.Node) (any, error) {
	switch typ {
	case TypeBinder:
		var b Binder
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("binder: %w", err)
		}
		return &b, nil

	case TypePendingIntent:
		var pi PendingIntent
		if err := n.Decode(&pi); err != nil {
			return nil, fmt.Errorf("pending intent: %w", err)
		}
		return &pi, nil

	case TypeColor:
		var raw struct {
			Value string `yaml:"value"`
		}
		if err := n.Decode(&raw); err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		return ParseColor(raw.Value)

	case TypeBitmap:
		return decodeBitmap(n)

	default:
		return nil, fmt.Errorf("%w %q at line %d", ErrUnknownType, typ, n.Line)
	}
}

func decodeBitmap(n *yaml.Node) (*Bitmap, error) {
	var raw struct {
		Width  int      `yaml:"width"`
		Height int      `yaml:"height"`
		Pixels []string `yaml:"pixels"`
		PNG    string   `yaml:"png"`
	}
	if err := n.Decode(&raw); err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}

	if raw.PNG != "" {
		data, err := base64.StdEncoding.DecodeString(raw.PNG)
		if err != nil {
			return nil, fmt.Errorf("%w: png payload: %v", ErrInvalidBitmap, err)
		}
		return DecodePNG(data)
	}

	pixels := make([]Color, 0, len(raw.Pixels))
	for _, s := range raw.Pixels {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBitmap, err)
		}
		pixels = append(pixels, c)
	}
	return NewBitmap(pixels, raw.Width, raw.Height)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

var _ Source = (*Parcel)(nil)
