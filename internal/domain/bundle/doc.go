// Package bundle models the key/value containers carried as extras of a
// Custom Tabs launch request.
//
// A Source is a raw container whose reads may fail. Two implementations are
// provided:
//
//   - Map is an ordered, already decoded container, built in memory.
//   - Parcel is a lazily decoded container backed by a YAML node tree. On
//     first access it decodes all of its direct entries; if any of them
//     cannot be decoded the whole Parcel becomes unreadable. Nested bundles
//     stay encoded until they are read, so a broken nested bundle never
//     affects its parent.
//
// SafeBundle wraps any Source and never fails: decode errors and panics are
// logged and reported as absent values. TryGet is the generic accessor the
// typed helpers are built on.
package bundle
