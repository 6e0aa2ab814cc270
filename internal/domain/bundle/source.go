package bundle

// Source is a raw key/value container whose reads may fail.
//
// Lookup reports whether key is present. A present key may hold a nil
// value. A non-nil error means the container could not be decoded and no
// key is readable.
type Source interface {
	Lookup(key string) (value any, ok bool, err error)
	Keys() ([]string, error)
}

// Map is an ordered in-memory Source. Values are stored as given; nested
// containers are any Source, lists are []any.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Put stores value under key and returns the map for chaining. Replacing an
// existing key keeps its original position.
func (m *Map) Put(key string, value any) *Map {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Remove deletes key if present.
func (m *Map) Remove(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// Lookup implements Source. It never fails.
func (m *Map) Lookup(key string) (any, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Keys implements Source and returns keys in insertion order.
func (m *Map) Keys() ([]string, error) {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out, nil
}

// Unreadable returns a Source whose every read fails with err.
func Unreadable(err error) Source {
	return unreadable{err: err}
}

type unreadable struct {
	err error
}

func (u unreadable) Lookup(string) (any, bool, error) { return nil, false, u.err }

func (u unreadable) Keys() ([]string, error) { return nil, u.err }

var (
	_ Source = (*Map)(nil)
	_ Source = unreadable{}
)
