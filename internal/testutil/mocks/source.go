// Package mocks provides test doubles for customtab ports and bundle sources.
package mocks

import (
	"sync"

	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
)

// Source wraps a bundle.Source and fails chosen reads deterministically.
type Source struct {
	mu        sync.Mutex
	base      bundle.Source
	failAll   error
	failKeys  map[string]error
	panicKeys map[string]any
	lookups   []string
}

// NewSource wraps base. A nil base is an empty bundle.
func NewSource(base bundle.Source) *Source {
	if base == nil {
		base = bundle.NewMap()
	}
	return &Source{
		base:      base,
		failKeys:  make(map[string]error),
		panicKeys: make(map[string]any),
	}
}

// FailAll makes every read fail with err, as if the container could not be
// decoded at all.
func (s *Source) FailAll(err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAll = err
	return s
}

// FailKey makes reads of key fail with err.
func (s *Source) FailKey(key string, err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failKeys[key] = err
	return s
}

// PanicOnKey makes reads of key panic with v.
func (s *Source) PanicOnKey(key string, v any) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panicKeys[key] = v
	return s
}

// Lookups returns the keys read so far, in order.
func (s *Source) Lookups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lookups...)
}

// Lookup implements bundle.Source.
func (s *Source) Lookup(key string) (any, bool, error) {
	s.mu.Lock()
	s.lookups = append(s.lookups, key)
	failAll := s.failAll
	err, fail := s.failKeys[key]
	p, panics := s.panicKeys[key]
	s.mu.Unlock()

	if failAll != nil {
		return nil, false, failAll
	}
	if panics {
		panic(p)
	}
	if fail {
		return nil, false, err
	}
	return s.base.Lookup(key)
}

// Keys implements bundle.Source.
func (s *Source) Keys() ([]string, error) {
	s.mu.Lock()
	failAll := s.failAll
	s.mu.Unlock()

	if failAll != nil {
		return nil, failAll
	}
	return s.base.Keys()
}

var _ bundle.Source = (*Source)(nil)
