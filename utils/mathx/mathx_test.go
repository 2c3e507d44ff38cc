// File: mathx_test.go
// Title: Unit Tests for Range Helpers
// Description: Tests for IsBetween and ForceRange across ordered types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBetween(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min, max  int
		exclusive bool
		expected  bool
	}{
		{"inside", 5, 1, 10, false, true},
		{"lower bound inclusive", 1, 1, 10, false, true},
		{"upper bound inclusive", 10, 1, 10, false, true},
		{"lower bound exclusive", 1, 1, 10, true, false},
		{"upper bound exclusive", 10, 1, 10, true, false},
		{"inside exclusive", 2, 1, 10, true, true},
		{"below", 0, 1, 10, false, false},
		{"above", 11, 1, 10, false, false},
		{"degenerate inclusive", 3, 3, 3, false, true},
		{"degenerate exclusive", 3, 3, 3, true, false},
		{"inverted range", 5, 10, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBetween(tt.value, tt.min, tt.max, tt.exclusive))
		})
	}
}

func TestIsBetween_OtherTypes(t *testing.T) {
	assert.True(t, IsBetween(0.5, 0.0, 1.0, true))
	assert.False(t, IsBetween(math.NaN(), 0.0, 1.0, false))
	assert.True(t, IsBetween("banana", "apple", "cherry", false))
	assert.False(t, IsBetween("zebra", "apple", "cherry", false))
}

func TestForceRange(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min, max int
		expected int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 300, 0, 255, 255},
		{"on bound", 10, 0, 10, 10},
		{"inverted bounds", 5, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForceRange(tt.value, tt.min, tt.max))
		})
	}
}

func TestForceRange_OtherTypes(t *testing.T) {
	assert.Equal(t, 1.5, ForceRange(9.0, -1.5, 1.5))
	assert.Equal(t, "c", ForceRange("b", "c", "x"))
	assert.True(t, math.IsNaN(ForceRange(math.NaN(), 0.0, 1.0)))
}

func TestForceRange_ResultIsBetween(t *testing.T) {
	for v := -20; v <= 20; v++ {
		got := ForceRange(v, -5, 7)
		assert.True(t, IsBetween(got, -5, 7, false), "ForceRange(%d) = %d", v, got)
		if IsBetween(v, -5, 7, false) {
			assert.Equal(t, v, got)
		}
	}
}
