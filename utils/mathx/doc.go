// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides range tests and clamping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package mathx provides generic range tests and clamping over cmp.Ordered
// types (integers, floats and strings).
//
//	mathx.IsBetween(5, 1, 10, false)  // true
//	mathx.IsBetween(10, 1, 10, true)  // false
//	mathx.ForceRange(300, 0, 255)     // 255
//	mathx.ForceRange("b", "c", "x")   // "c"
//
// NaN compares false against everything, so IsBetween(NaN, ...) is false
// and ForceRange(NaN, ...) returns NaN unchanged.
package mathx
