// File: split.go
// Title: Escape-Aware Splitting
// Description: Splits strings on a delimiter that may itself be escaped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import "strings"

// trimCutset matches the characters PHP-style trim() removes
const trimCutset = " \t\n\r\x00\x0B"

// DefaultEscape is the escape character used by most callers
const DefaultEscape = `\`

// ExplodeWithEscape splits s on every delimiter that is not immediately
// preceded by escape. In each piece the sequence escape+delimiter collapses
// to delimiter, and surrounding whitespace is trimmed; pieces that are
// blank are dropped.
//
// A limit above zero caps the number of raw pieces: once limit-1 splits have
// been made the rest of s, delimiters included, becomes the final piece.
// A limit of zero or less means no cap.
//
//	ExplodeWithEscape("|", `A|B\|C|D`, 0, `\`) // ["A", "B|C", "D"]
func ExplodeWithEscape(delimiter, s string, limit int, escape string) []string {
	result := []string{}
	for _, piece := range splitUnescaped(delimiter, s, limit, escape) {
		if strings.Trim(piece, trimCutset) == "" {
			continue
		}
		if escape != "" && delimiter != "" {
			piece = strings.ReplaceAll(piece, escape+delimiter, delimiter)
		}
		result = append(result, strings.Trim(piece, trimCutset))
	}
	return result
}

func splitUnescaped(delimiter, s string, limit int, escape string) []string {
	if delimiter == "" {
		return []string{s}
	}

	var pieces []string
	start := 0
	for i := 0; i+len(delimiter) <= len(s); {
		if limit > 0 && len(pieces) == limit-1 {
			break
		}
		if s[i:i+len(delimiter)] != delimiter {
			i++
			continue
		}
		if escape != "" && strings.HasSuffix(s[:i], escape) {
			i++
			continue
		}
		pieces = append(pieces, s[start:i])
		i += len(delimiter)
		start = i
	}
	return append(pieces, s[start:])
}
