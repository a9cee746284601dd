package optimize_test

import (
	"fmt"

	"github.com/katalvlaran/rexpr/optimize"
	"github.com/katalvlaran/rexpr/pattern"
)

// ExampleOptimize shows stacked repetition collapsing via count algebra
// and adjacent literals merging during flattening.
func ExampleOptimize() {
	stacked := pattern.Repeat{
		Inner: pattern.Repeat{Inner: pattern.Digit{}, Count: pattern.Exact{N: 3}},
		Count: pattern.Exact{N: 2},
	}
	fmt.Println(optimize.Optimize(stacked))

	chatty := pattern.Sequence{
		Left:  pattern.Text{Value: "ab"},
		Right: pattern.Sequence{Left: pattern.Text{Value: "cd"}, Right: pattern.Digit{}},
	}
	fmt.Println(optimize.Optimize(chatty))
	// Output:
	// Repeat(Digit, Exact(6))
	// Sequence(Text("abcd"), Digit)
}
