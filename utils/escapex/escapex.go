// File: escapex.go
// Title: Context-Specific String Escaping
// Description: Escapes strings for markup, stylesheet, script-string and
//              quoted source-literal contexts. Every function is total:
//              unusual input is substituted or dropped, never rejected
//              with an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package escapex

import (
	"html"
	"strings"
	"unicode/utf8"
)

// Escape escapes & < > " ' for safe inclusion in HTML text and attribute
// values. Invalid UTF-8 sequences are replaced with U+FFFD.
//
// With doubleEscape false, an ampersand that already begins a valid
// character reference (&amp; &#39; &#x27;) is kept as is.
func Escape(s string, doubleEscape bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '&':
			if !doubleEscape {
				if n := entityLength(s[i:]); n > 0 {
					b.WriteString(s[i : i+n])
					i += n
					continue
				}
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#039;")
		default:
			if c < utf8.RuneSelf {
				b.WriteByte(c)
				break
			}
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		i++
	}
	return b.String()
}

// entityLength returns the length of the character reference at the start
// of s, or 0 if s does not start with one
func entityLength(s string) int {
	end := strings.IndexByte(s, ';')
	if end < 2 || end > 33 {
		return 0
	}
	body := s[1:end]

	if body[0] == '#' {
		digits := body[1:]
		hex := false
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			hex = true
			digits = digits[1:]
		}
		if len(digits) == 0 {
			return 0
		}
		cp := 0
		for i := 0; i < len(digits); i++ {
			d := hexValue(digits[i])
			if d < 0 || (!hex && d > 9) {
				return 0
			}
			if hex {
				cp = cp*16 + d
			} else {
				cp = cp*10 + d
			}
			if cp > utf8.MaxRune {
				return 0
			}
		}
		return end + 1
	}

	for i := 0; i < len(body); i++ {
		if !isAlnum(body[i]) {
			return 0
		}
	}
	if !isAlpha(body[0]) {
		return 0
	}
	// html knows the full named reference table; a partial match such as
	// "&not" inside "&notit;" leaves the rest of the name behind
	ref := s[:end+1]
	unescaped := html.UnescapeString(ref)
	if unescaped == ref || strings.HasSuffix(unescaped, body[len(body)-1:]+";") {
		return 0
	}
	return end + 1
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

// EscapeCSS removes every byte that is not a letter, digit or one of _ . # / -
func EscapeCSS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; isAlnum(c) || c == '_' || c == '.' || c == '#' || c == '/' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// writeUnicodeEscape writes r as a six-character backslash-u escape
func writeUnicodeEscape(b *strings.Builder, r rune, digits string) {
	b.WriteByte('\\')
	b.WriteByte('u')
	b.WriteByte(digits[(r>>12)&0xF])
	b.WriteByte(digits[(r>>8)&0xF])
	b.WriteByte(digits[(r>>4)&0xF])
	b.WriteByte(digits[r&0xF])
}

// EscapeJS returns s encoded as the inside of a double-quoted JavaScript
// string literal, without the surrounding quotes. < > & ' " are written as
// hex escapes so the result is also safe inside HTML. Non-ASCII text is kept
// literally except the line and paragraph separators U+2028 and U+2029.
// Invalid UTF-8 yields "".
func EscapeJS(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		switch r {
		case '"', '\'', '<', '>', '&':
			writeUnicodeEscape(&b, r, hexUpper)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0x2028, 0x2029:
			writeUnicodeEscape(&b, r, hexLower)
		default:
			if r < 0x20 {
				writeUnicodeEscape(&b, r, hexLower)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeSQStr escapes s for a single-quoted source string literal:
// backslash and apostrophe are backslash-escaped, NUL bytes are removed.
func EscapeSQStr(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 0:
		case '\\', '\'':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeDQStr escapes s for a double-quoted source string literal with
// $-interpolation: backslash, double quote and $ are backslash-escaped,
// NUL bytes are removed.
func EscapeDQStr(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 0:
		case '\\', '"', '$':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
