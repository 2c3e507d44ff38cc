// File: benchmark_test.go
// Title: Benchmarks for stringx
// Description: Benchmarks for the predicates and the escape-aware splitter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial benchmark implementation

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkStartsWith(b *testing.B) {
	haystack := "Content-Type: application/json"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StartsWith("content-type", haystack, i%2 == 0)
	}
}

func BenchmarkExplodeWithEscape(b *testing.B) {
	input := strings.Repeat(`alpha|be\|ta| gamma |`, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExplodeWithEscape("|", input, 0, DefaultEscape)
	}
}

func BenchmarkToBool(b *testing.B) {
	inputs := []string{"yes", "off", "vrai", "maybe", ""}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToBool(inputs[i%len(inputs)])
	}
}
