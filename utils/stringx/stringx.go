// File: stringx.go
// Title: String Predicates
// Description: Prefix, suffix and substring predicates with optional
//              ASCII case folding, plus small blank/basename helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"reflect"
	"strings"
	"unicode"
)

// StartsWith reports whether haystack begins with needle. With
// caseSensitive false, ASCII letters compare case-insensitively.
// An empty needle matches every haystack.
func StartsWith(needle, haystack string, caseSensitive bool) bool {
	if len(needle) > len(haystack) {
		return false
	}
	prefix := haystack[:len(needle)]
	if caseSensitive {
		return prefix == needle
	}
	return equalFoldASCII(prefix, needle)
}

// EndsWith reports whether haystack ends with needle. With caseSensitive
// false, ASCII letters compare case-insensitively.
func EndsWith(needle, haystack string, caseSensitive bool) bool {
	if len(needle) > len(haystack) {
		return false
	}
	suffix := haystack[len(haystack)-len(needle):]
	if caseSensitive {
		return suffix == needle
	}
	return equalFoldASCII(suffix, needle)
}

// Contains reports whether needle occurs anywhere in haystack. With
// caseSensitive false, ASCII letters compare case-insensitively.
func Contains(needle, haystack string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(lowerASCII(haystack), lowerASCII(needle))
}

// equalFoldASCII compares a and b byte-wise, folding only A-Z
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCII(a[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// lowerASCII lowercases A-Z and leaves every other byte alone, so byte
// offsets stay identical to the input
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = toLowerASCII(b[j])
			}
			return string(b)
		}
	}
	return s
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ClassBasename returns the unqualified name of a type.
//
// For a string it returns the last segment after any / or \ separator,
// so "App\Models\User" and "app/models/User" both give "User". For any
// other value it returns the name of its dynamic type with package and
// pointer stripped. nil gives "".
func ClassBasename(class any) string {
	if class == nil {
		return ""
	}
	if s, ok := class.(string); ok {
		s = strings.TrimRight(strings.ReplaceAll(s, `\`, "/"), "/")
		if i := strings.LastIndexByte(s, '/'); i >= 0 {
			return s[i+1:]
		}
		return s
	}
	t := reflect.TypeOf(class)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
