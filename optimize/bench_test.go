package optimize_test

import (
	"testing"

	"github.com/katalvlaran/rexpr/optimize"
	"github.com/katalvlaran/rexpr/pattern"
)

// literalChain builds a left-leaning sequence of n single-rune literals,
// the worst case for flattening plus transitive text merging.
func literalChain(n int) pattern.Pattern {
	var tree pattern.Pattern = pattern.Text{Value: "a"}
	for i := 1; i < n; i++ {
		tree = pattern.Sequence{Left: tree, Right: pattern.Text{Value: "a"}}
	}

	return tree
}

func BenchmarkOptimize_FlattenMerge64(b *testing.B) {
	tree := literalChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = optimize.Optimize(tree)
	}
}

func BenchmarkOptimize_StackedRepeat(b *testing.B) {
	tree := pattern.Repeat{
		Inner: pattern.Repeat{Inner: pattern.Digit{}, Count: pattern.Exact{N: 3}},
		Count: pattern.Exact{N: 2},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = optimize.Optimize(tree)
	}
}
