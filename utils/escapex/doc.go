// File: doc.go
// Title: Package Documentation for escapex
// Description: Package escapex escapes strings for specific output contexts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package escapex escapes strings for one output context each.
//
// Overview
//
//   - Escape: HTML text and attribute values (& < > " ').
//   - EscapeCSS: a CSS property value, by deleting everything outside
//     [A-Za-z0-9_.#/-].
//   - EscapeJS: the body of a JavaScript string literal that is also safe
//     to embed in an HTML script block.
//   - EscapeSQStr / EscapeDQStr: the body of a single- or double-quoted
//     source-code string literal. NUL bytes are removed.
//
// None of these functions fail. Escape substitutes U+FFFD for invalid
// UTF-8; EscapeJS returns "" for invalid UTF-8 because no JSON string can
// represent it.
//
// Double escaping
//
// Escape(s, false) leaves existing character references alone, which is
// useful when s may already be partially escaped:
//
//	escapex.Escape("Tom &amp; Jerry <3", false) // "Tom &amp; Jerry &lt;3"
//	escapex.Escape("Tom &amp; Jerry <3", true)  // "Tom &amp;amp; Jerry &lt;3"
package escapex
