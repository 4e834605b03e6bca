package triplet_test

import (
	"fmt"

	"github.com/katalvlaran/sparsecalc/triplet"
)

// ExampleParseString shows malformed-line tolerance.
func ExampleParseString() {
	m, rep, err := triplet.ParseString("1 2 3\nbad line\n4 5 6\n")
	if err != nil {
		panic(err)
	}

	fmt.Print(m)
	for _, d := range rep.Diagnostics {
		fmt.Println(d)
	}
	// Output:
	// 1 2 3
	// 4 5 6
	// line 2: triplet: malformed line: expected 3 integers, got 0: "bad line"
}
