// File: doc.go
// Title: Package Documentation for arrayx
// Description: Package arrayx provides ordered-container accessors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package arrayx provides an insertion-ordered container and the accessors
// that operate on it.
//
// Map holds values under integer or string keys and keeps them in the order
// they were first inserted. Append mirrors positional insertion: the new
// value lands under one past the largest integer key used so far.
//
//	m := arrayx.NewMap().
//	    SetString("title", "Hello").
//	    Append("first").
//	    Append("second")
//
//	v, _ := arrayx.First(m)    // "Hello"
//	k, _ := arrayx.LastKey(m)  // 1
//
// First, FirstKey, Last and LastKey return a second boolean that is false for
// a nil or empty container; they never panic.
//
// Flatten walks nested containers depth first and produces a single-level
// Map of leaves. With preserveKeys, leaves reached under string keys keep
// those keys and later leaves overwrite earlier ones with the same key;
// integer-keyed leaves are always appended.
//
//	nested := arrayx.List("a", arrayx.List("b", "c"), []any{"d"})
//	arrayx.FlattenSlice(nested.Values()) // [a b c d]
package arrayx
