// File: ordered.go
// Title: Insertion-Ordered Container
// Description: Implements Map, a container of string- or integer-keyed values
//              that remembers insertion order. It models the ordered
//              associative arrays the accessors and Flatten operate on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package arrayx

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Key is a container key: either an integer or a string
type Key struct {
	str   string
	num   int
	isInt bool
}

// IntKey returns an integer key
func IntKey(i int) Key {
	return Key{num: i, isInt: true}
}

// StrKey returns a string key. Strings holding a canonical decimal integer
// ("7", "-3", but not "07" or "-0") become integer keys.
func StrKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{str: s}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || s == "-0" {
		return 0, false
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsInt reports whether k is an integer key
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k (0 for string keys)
func (k Key) Int() int { return k.num }

// String returns the key as text
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Map is an insertion-ordered container. The zero value is ready to use.
type Map struct {
	keys    []Key
	values  []any
	index   map[Key]int
	nextInt int
}

// NewMap creates an empty Map
func NewMap() *Map {
	return &Map{}
}

// List creates a Map holding values under keys 0..n-1
func List(values ...any) *Map {
	m := NewMap()
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key Key, value any) *Map {
	if m.index == nil {
		m.index = make(map[Key]int)
	}
	if i, ok := m.index[key]; ok {
		m.values[i] = value
		return m
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	if key.isInt && key.num >= m.nextInt {
		m.nextInt = key.num + 1
	}
	return m
}

// SetString is shorthand for Set(StrKey(key), value)
func (m *Map) SetString(key string, value any) *Map {
	return m.Set(StrKey(key), value)
}

// Append stores value under the next free integer key
// (one past the largest integer key so far, never below 0)
func (m *Map) Append(value any) *Map {
	return m.Set(IntKey(m.nextInt), value)
}

// Get returns the value stored under key
func (m *Map) Get(key Key) (any, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Len returns the number of entries; a nil Map has length 0
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []Key {
	if m == nil {
		return nil
	}
	return append([]Key(nil), m.keys...)
}

// Values returns the values in insertion order
func (m *Map) Values() []any {
	if m == nil {
		return nil
	}
	return append([]any(nil), m.values...)
}

// All iterates over the entries in insertion order
func (m *Map) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// String renders the map as {k: v, ...} in insertion order
func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
