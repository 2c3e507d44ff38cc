// File: arrayx.go
// Title: Array Accessors and Flattening
// Description: First/last element and key access and recursive flattening
//              for ordered containers and plain slices. All functions accept
//              nil or empty input and report absence instead of panicking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package arrayx

import (
	"sort"
)

// First returns the value at the lowest insertion position
func First(m *Map) (any, bool) {
	if m.Len() == 0 {
		return nil, false
	}
	return m.values[0], true
}

// FirstKey returns the key at the lowest insertion position
func FirstKey(m *Map) (Key, bool) {
	if m.Len() == 0 {
		return Key{}, false
	}
	return m.keys[0], true
}

// Last returns the value at the highest insertion position
func Last(m *Map) (any, bool) {
	if m.Len() == 0 {
		return nil, false
	}
	return m.values[len(m.values)-1], true
}

// LastKey returns the key at the highest insertion position
func LastKey(m *Map) (Key, bool) {
	if m.Len() == 0 {
		return Key{}, false
	}
	return m.keys[len(m.keys)-1], true
}

// FirstOf returns the first element of a slice
func FirstOf[T any](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}
	return slice[0], true
}

// LastOf returns the last element of a slice
func LastOf[T any](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}
	return slice[len(slice)-1], true
}

// Flatten collapses nested containers into a single-level Map.
//
// Nested *Map, []any and map[string]any values are descended into depth
// first; map[string]any is visited in sorted key order since Go maps have
// no order of their own. Every other value is a leaf. With preserveKeys, a
// leaf under a string key is stored under that key (a later leaf with the
// same key overwrites the earlier one); all other leaves are appended.
func Flatten(m *Map, preserveKeys bool) *Map {
	result := NewMap()
	for k, v := range m.All() {
		flattenInto(result, k, v, preserveKeys)
	}
	return result
}

func flattenInto(result *Map, key Key, value any, preserveKeys bool) {
	switch v := value.(type) {
	case *Map:
		for k, child := range v.All() {
			flattenInto(result, k, child, preserveKeys)
		}
	case []any:
		for i, child := range v {
			flattenInto(result, IntKey(i), child, preserveKeys)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(result, StrKey(k), v[k], preserveKeys)
		}
	default:
		if preserveKeys && !key.IsInt() {
			result.Set(key, value)
		} else {
			result.Append(value)
		}
	}
}

// FlattenSlice returns every leaf reachable from values in depth-first order
func FlattenSlice(values []any) []any {
	return Flatten(List(values...), false).Values()
}
