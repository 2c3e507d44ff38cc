// File: doc.go
// Title: Package Documentation for encodingx
// Description: Package encodingx provides URL-safe base64 and hex helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package encodingx provides URL-safe base64 and hex decoding helpers.
//
// Base64EncodeURLSafe produces unpadded base64 using - and _ so the result
// can be placed in URLs and file names unchanged. Base64DecodeURLSafe
// accepts the output of either alphabet, padded or not, and never fails:
// malformed input decodes to whatever prefix is recoverable.
//
//	token := encodingx.Base64EncodeURLSafe([]byte{0xfb, 0xff}) // "-_8"
//	raw := encodingx.Base64DecodeURLSafe(token)               // [0xfb 0xff]
package encodingx
