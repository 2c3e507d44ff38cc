// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string predicates and splitting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package stringx provides string predicates and delimiter-aware splitting.
//
// Predicates
//
// StartsWith, EndsWith and Contains take the needle first and the haystack
// second, followed by a case-sensitivity flag. Case-insensitive comparison
// folds ASCII letters only and works on bytes, so byte lengths never change
// under folding and a needle longer than the haystack never matches.
//
//	stringx.StartsWith("", s, true)        // always true
//	stringx.StartsWith("ABC", "abcd", false) // true
//
// Splitting
//
// ExplodeWithEscape splits on a delimiter unless it is preceded by an
// escape character, un-escapes escaped delimiters, trims each piece and
// drops blank ones.
//
//	stringx.ExplodeWithEscape("|", `A|B\|C|D`, 0, `\`) // ["A" "B|C" "D"]
//
// Miscellaneous
//
// ToBool reads loose yes/no input, ClassBasename strips namespaces from a
// type name and IsBlank checks for whitespace-only strings.
package stringx
