// File: benchmark_test.go
// Title: Benchmarks for escapex
// Description: Benchmarks for HTML and JavaScript escaping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial benchmark implementation

package escapex

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat(`<p class="x">Tom &amp; Jerry's "show"</p>`, 20)

func BenchmarkEscape(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Escape(benchText, true)
	}
}

func BenchmarkEscape_NoDouble(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Escape(benchText, false)
	}
}

func BenchmarkEscapeJS(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EscapeJS(benchText)
	}
}
