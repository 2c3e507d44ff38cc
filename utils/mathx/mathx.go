// File: mathx.go
// Title: Range Predicates and Clamping
// Description: Ordered range tests and clamping for any cmp.Ordered type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package mathx

import "cmp"

// IsBetween reports whether min <= value <= max, or min < value < max when
// exclusive is true. Strings compare lexically.
func IsBetween[T cmp.Ordered](value, min, max T, exclusive bool) bool {
	if exclusive {
		return value > min && value < max
	}
	return value >= min && value <= max
}

// ForceRange clamps value into [min, max]. The lower bound is applied
// first, so with min > max the result is always max.
func ForceRange[T cmp.Ordered](value, min, max T) T {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}
