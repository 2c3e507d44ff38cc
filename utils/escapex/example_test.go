// File: example_test.go
// Title: Example Tests for escapex
// Description: Executable examples for the package documentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial examples

package escapex_test

import (
	"fmt"

	"github.com/msto63/helperx/utils/escapex"
)

func ExampleEscape() {
	fmt.Println(escapex.Escape(`<a title="Tom's">`, true))
	fmt.Println(escapex.Escape("&amp; &copy; & more", false))
	// Output:
	// &lt;a title=&quot;Tom&#039;s&quot;&gt;
	// &amp; &copy; &amp; more
}

func ExampleEscapeCSS() {
	fmt.Println(escapex.EscapeCSS("#fff; } body { color: red"))
	// Output:
	// #fffbodycolorred
}

func ExampleEscapeDQStr() {
	fmt.Println(escapex.EscapeDQStr(`Cost: $5 "net"`))
	// Output:
	// Cost: \$5 \"net\"
}

func ExampleEscapeSQStr() {
	fmt.Println(escapex.EscapeSQStr(`It's C:\dir`))
	// Output:
	// It\'s C:\\dir
}
