// File: doc.go
// Title: Package Documentation for utf8x
// Description: Package utf8x provides UTF-8 validation and whitespace helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package utf8x validates UTF-8 text and normalises Unicode whitespace.
//
// "Space-like" throughout this package means any rune in the Unicode
// separator categories (Zs, Zl, Zp) or the other categories (Cc, Cf, Co,
// Cs, Cn). That covers ASCII whitespace, no-break and ideographic spaces,
// zero-width format characters, private-use and unassigned code points.
//
// Operations:
//
//	utf8x.Check(s)                  // well-formed UTF-8?
//	utf8x.MBEncode(s)               // 4-byte sequences -> &#x1f600;
//	utf8x.NormalizeSpaces(s, false) // collapse space-like runs to " "
//	utf8x.Trim(s)                   // strip space-like runs at both ends
//
// NormalizeSpaces and Trim return "" for malformed input rather than
// guessing at a repair. MBEncode works on raw bytes and never fails.
package utf8x
