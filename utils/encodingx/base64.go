// File: base64.go
// Title: URL-Safe Base64
// Description: Base64 with the URL-safe alphabet and no padding, plus a
//              lenient decoder that never fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package encodingx

import (
	"encoding/base64"
)

// Base64EncodeURLSafe encodes data with - and _ in place of + and / and
// without = padding
func Base64EncodeURLSafe(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Base64DecodeURLSafe decodes URL-safe base64 with or without padding.
//
// Decoding is lenient and never fails: characters outside the alphabet
// (including = and whitespace) are skipped, and the standard + and / are
// accepted as well. A trailing group of a single character carries fewer
// than 8 bits and is dropped.
func Base64DecodeURLSafe(s string) []byte {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			clean = append(clean, c)
		case c == '+':
			clean = append(clean, '-')
		case c == '/':
			clean = append(clean, '_')
		}
	}
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}

	out := make([]byte, base64.RawURLEncoding.DecodedLen(len(clean)))
	// clean holds only alphabet bytes in a decodable length
	n, _ := base64.RawURLEncoding.Decode(out, clean)
	return out[:n]
}
