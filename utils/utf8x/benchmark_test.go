// File: benchmark_test.go
// Title: Benchmarks for utf8x
// Description: Benchmarks for whitespace normalisation and trimming.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial benchmark implementation

package utf8x

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("word \t"+nbsp+ideographic+" next\n", 40)

func BenchmarkNormalizeSpaces(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizeSpaces(benchText, i%2 == 0)
	}
}

func BenchmarkTrim(b *testing.B) {
	padded := ideographic + "  " + benchText + "\t" + nbsp

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Trim(padded)
	}
}

func BenchmarkMBEncode(b *testing.B) {
	text := strings.Repeat("smile "+grinning, 40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MBEncode(text)
	}
}
