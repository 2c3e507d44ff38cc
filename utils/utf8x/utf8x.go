// File: utf8x.go
// Title: UTF-8 Validation and Whitespace Normalisation
// Description: Validates UTF-8, encodes supplementary-plane characters as
//              numeric references, and collapses or trims Unicode separator
//              and control runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package utf8x

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// spaceLike holds the separator (Z) and other (C) categories. Unassigned
// code points are also part of C and are checked separately because the
// unicode package has no table for them.
var spaceLike = rangetable.Merge(unicode.Z, unicode.C)

// assigned lists every major category except the unassigned one
var assigned = []*unicode.RangeTable{
	unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C,
}

// IsSpaceLike reports whether r is a separator, control, format,
// private-use, surrogate or unassigned code point
func IsSpaceLike(r rune) bool {
	if unicode.Is(spaceLike, r) {
		return true
	}
	return !unicode.In(r, assigned...)
}

// Check reports whether s is well-formed UTF-8. Overlong forms, surrogates
// and code points above U+10FFFF are rejected.
func Check(s string) bool {
	return utf8.ValidString(s)
}

// MBEncode rewrites every four-byte sequence (lead byte F0..F7 followed by
// three continuation bytes) as an &#x...; reference in lowercase hex. All
// other bytes are copied unchanged, so emoji and other characters outside
// the Basic Multilingual Plane can be stored in three-byte-only storage.
func MBEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if i+3 < len(s) && isFourByteSeq(s[i], s[i+1], s[i+2], s[i+3]) {
			cp := int64(s[i]&0x07)<<18 | int64(s[i+1]&0x3F)<<12 | int64(s[i+2]&0x3F)<<6 | int64(s[i+3]&0x3F)
			b.WriteString("&#x")
			b.WriteString(strconv.FormatInt(cp, 16))
			b.WriteByte(';')
			i += 4
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isFourByteSeq(b0, b1, b2, b3 byte) bool {
	return b0 >= 0xF0 && b0 <= 0xF7 && isCont(b1) && isCont(b2) && isCont(b3)
}

func isCont(c byte) bool {
	return c >= 0x80 && c <= 0xBF
}

// NormalizeSpaces replaces every maximal run of space-like runes with a
// single ASCII space. With multiline set, line feeds are kept and split
// runs. Invalid UTF-8 yields "".
func NormalizeSpaces(s string, multiline bool) string {
	if !utf8.ValidString(s) {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if multiline && r == '\n' {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if IsSpaceLike(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		b.WriteRune(r)
		inRun = false
	}
	return b.String()
}

// Trim removes leading and trailing space-like runes. Invalid UTF-8
// yields "".
func Trim(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return strings.TrimFunc(s, IsSpaceLike)
}
