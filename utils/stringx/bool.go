// File: bool.go
// Title: Loose Boolean Parsing
// Description: Converts free-form user input such as "yes", "off" or "oui"
//              to a boolean.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import "regexp"

var (
	truthyPattern = regexp.MustCompile(`(?i)^(1|[ty].*|on|oui|si|vrai|aye)\n?$`)
	falsyPattern  = regexp.MustCompile(`(?i)^(0|[fn].*|off)\n?$`)
)

// ToBool converts input to a boolean, case-insensitively:
// "1", anything starting with t or y, "on", "oui", "si", "vrai" and "aye"
// are true; "0", anything starting with f or n, and "off" are false.
// Any other non-empty input is true.
func ToBool(input string) bool {
	if truthyPattern.MatchString(input) {
		return true
	}
	if falsyPattern.MatchString(input) {
		return false
	}
	return input != ""
}
