// File: arrayx_test.go
// Title: Unit Tests for Array Accessors
// Description: Tests for the ordered container, first/last accessors and
//              Flatten, including the depth-first leaf ordering property.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package arrayx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKey_CanonicalIntegers(t *testing.T) {
	tests := []struct {
		input  string
		isInt  bool
		intVal int
	}{
		{"7", true, 7},
		{"-3", true, -3},
		{"0", true, 0},
		{"07", false, 0},
		{"-0", false, 0},
		{"1.5", false, 0},
		{"", false, 0},
		{"abc", false, 0},
		{"-", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k := StrKey(tt.input)
			assert.Equal(t, tt.isInt, k.IsInt())
			assert.Equal(t, tt.intVal, k.Int())
			assert.Equal(t, tt.input, k.String())
		})
	}
}

func TestMap_AppendUsesNextIntegerKey(t *testing.T) {
	m := NewMap()
	m.Set(IntKey(5), "five")
	m.Append("six")
	m.SetString("name", "x")
	m.Append("seven")

	assert.Equal(t, []Key{IntKey(5), IntKey(6), StrKey("name"), IntKey(7)}, m.Keys())
}

func TestMap_NegativeKeyDoesNotLowerNextIndex(t *testing.T) {
	m := NewMap()
	m.Set(IntKey(-4), "neg")
	m.Append("zero")

	assert.Equal(t, []Key{IntKey(-4), IntKey(0)}, m.Keys())
}

func TestMap_SetExistingKeepsPosition(t *testing.T) {
	m := NewMap().SetString("a", 1).SetString("b", 2).SetString("a", 3)

	assert.Equal(t, []any{3, 2}, m.Values())
	v, ok := m.Get(StrKey("a"))
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMap_ZeroValueAndNil(t *testing.T) {
	var zero Map
	zero.Append("x")
	assert.Equal(t, 1, zero.Len())

	var nilMap *Map
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
	_, ok := nilMap.Get(IntKey(0))
	assert.False(t, ok)
	assert.Equal(t, "{}", nilMap.String())
}

func TestMap_String(t *testing.T) {
	m := NewMap().SetString("a", 1).Append("b")
	assert.Equal(t, "{a: 1, 0: b}", m.String())
}

func TestFirstAndLast(t *testing.T) {
	m := NewMap().SetString("title", "Hello").Append("first").Append("second")

	v, ok := First(m)
	assert.True(t, ok)
	assert.Equal(t, "Hello", v)

	k, ok := FirstKey(m)
	assert.True(t, ok)
	assert.Equal(t, StrKey("title"), k)

	v, ok = Last(m)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	k, ok = LastKey(m)
	assert.True(t, ok)
	assert.Equal(t, IntKey(1), k)
}

func TestFirstAndLast_Empty(t *testing.T) {
	for name, m := range map[string]*Map{"nil": nil, "empty": NewMap()} {
		t.Run(name, func(t *testing.T) {
			_, ok := First(m)
			assert.False(t, ok)
			_, ok = Last(m)
			assert.False(t, ok)
			_, ok = FirstKey(m)
			assert.False(t, ok)
			_, ok = LastKey(m)
			assert.False(t, ok)
		})
	}
}

func TestFirstOfLastOf(t *testing.T) {
	v, ok := FirstOf([]int{3, 4, 5})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = LastOf([]int{3, 4, 5})
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = FirstOf[string](nil)
	assert.False(t, ok)
	_, ok = LastOf([]string{})
	assert.False(t, ok)
}

func TestFlatten_PreserveKeys(t *testing.T) {
	m := NewMap().
		SetString("a", 1).
		Append(List(2, 3)).
		SetString("nested", NewMap().SetString("a", 4).SetString("b", 5)).
		Append(6)

	got := Flatten(m, true)

	// "a" is overwritten in place by the nested value
	assert.Equal(t, []Key{StrKey("a"), IntKey(0), IntKey(1), StrKey("b"), IntKey(2)}, got.Keys())
	assert.Equal(t, []any{4, 2, 3, 5, 6}, got.Values())
}

func TestFlatten_WithoutPreserveKeys(t *testing.T) {
	m := NewMap().
		SetString("a", 1).
		Append(List(2, 3)).
		SetString("nested", NewMap().SetString("a", 4).SetString("b", 5)).
		Append(6)

	got := Flatten(m, false)

	assert.Equal(t, []any{1, 2, 3, 4, 5, 6}, got.Values())
	for i, k := range got.Keys() {
		assert.Equal(t, IntKey(i), k)
	}
}

func TestFlatten_MixedNestedTypes(t *testing.T) {
	m := List(
		[]any{"a", []any{"b", map[string]any{"z": "d", "y": "c"}}},
		nil,
		"e",
	)

	got := Flatten(m, false)
	assert.Equal(t, []any{"a", "b", "c", "d", nil, "e"}, got.Values())
}

func TestFlatten_EmptyAndNil(t *testing.T) {
	assert.Equal(t, 0, Flatten(nil, true).Len())
	assert.Equal(t, 0, Flatten(List(List(), []any{}), true).Len())
}

// countLeaves walks the same structure independently of Flatten
func countLeaves(v any, out *[]any) {
	switch c := v.(type) {
	case *Map:
		for _, child := range c.All() {
			countLeaves(child, out)
		}
	case []any:
		for _, child := range c {
			countLeaves(child, out)
		}
	default:
		*out = append(*out, v)
	}
}

func TestFlatten_LeafSequenceMatchesDepthFirstWalk(t *testing.T) {
	inputs := []*Map{
		List(1, 2, 3),
		List(List(List(List(1))), 2),
		NewMap().SetString("x", List("p", NewMap().SetString("y", "q"))).Append("r"),
		List([]any{}, List(), []any{List(true, false), 3.5}),
	}
	for i, in := range inputs {
		var want []any
		countLeaves(in, &want)

		got := Flatten(in, false).Values()
		require.Equalf(t, want, got, "input %d", i)
	}
}

func TestFlattenSlice(t *testing.T) {
	got := FlattenSlice([]any{1, []any{2, []any{3}}, List(4)})
	assert.Equal(t, []any{1, 2, 3, 4}, got)
}
