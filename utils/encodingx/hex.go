// File: hex.go
// Title: Hex to Binary
// Description: Converts hexadecimal text to raw bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package encodingx

import "encoding/hex"

// Hex2Bin decodes hexadecimal text. An odd number of digits is padded with
// a leading 0; any non-hex digit yields nil.
func Hex2Bin(s string) []byte {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}
