package pattern_test

import (
	"testing"

	"github.com/katalvlaran/rexpr/pattern"
	"github.com/stretchr/testify/assert"
)

// TestEqual_Leaves verifies structural identity for each leaf variant.
func TestEqual_Leaves(t *testing.T) {
	assert.True(t, pattern.Equal(pattern.Text{Value: "ab"}, pattern.Text{Value: "ab"}))
	assert.False(t, pattern.Equal(pattern.Text{Value: "ab"}, pattern.Text{Value: "ba"}))
	assert.True(t, pattern.Equal(pattern.CharSet{Chars: "a-z"}, pattern.CharSet{Chars: "a-z"}))
	assert.False(t, pattern.Equal(pattern.CharSet{Chars: "a-z"}, pattern.Text{Value: "a-z"}), "different variants are never equal")
	assert.True(t, pattern.Equal(pattern.Digit{}, pattern.Digit{}))
}

// TestEqual_Composites verifies deep comparison through every composite variant.
func TestEqual_Composites(t *testing.T) {
	a := pattern.Match{Inner: pattern.Sequence{
		Left:  pattern.Capture{Name: "n", Inner: pattern.Digit{}},
		Right: pattern.Repeat{Inner: pattern.Text{Value: "x"}, Count: pattern.Exact{N: 2}},
	}}
	b := pattern.Match{Inner: pattern.Sequence{
		Left:  pattern.Capture{Name: "n", Inner: pattern.Digit{}},
		Right: pattern.Repeat{Inner: pattern.Text{Value: "x"}, Count: pattern.Exact{N: 2}},
	}}
	assert.True(t, pattern.Equal(a, b))

	c := pattern.Match{Inner: pattern.Sequence{
		Left:  pattern.Capture{Name: "m", Inner: pattern.Digit{}},
		Right: pattern.Repeat{Inner: pattern.Text{Value: "x"}, Count: pattern.Exact{N: 2}},
	}}
	assert.False(t, pattern.Equal(a, c), "capture name differs")
}

// TestEqual_Nil verifies nil handling: nil equals only nil.
func TestEqual_Nil(t *testing.T) {
	assert.True(t, pattern.Equal(nil, nil))
	assert.False(t, pattern.Equal(nil, pattern.Digit{}))
	assert.False(t, pattern.Equal(pattern.Digit{}, nil))
	assert.True(t, pattern.Equal(pattern.Sequence{}, pattern.Sequence{}), "two all-nil sequences are structurally equal")
}

// TestEqualCount_AllVariants walks the Count comparison table.
func TestEqualCount_AllVariants(t *testing.T) {
	assert.True(t, pattern.EqualCount(pattern.Exact{N: 3}, pattern.Exact{N: 3}))
	assert.False(t, pattern.EqualCount(pattern.Exact{N: 3}, pattern.Exact{N: 4}))
	assert.True(t, pattern.EqualCount(pattern.Range{Min: 1, Max: pattern.Unbounded}, pattern.Range{Min: 1, Max: pattern.Unbounded}))
	assert.False(t, pattern.EqualCount(pattern.Range{Min: 1, Max: 2}, pattern.Range{Min: 1, Max: 3}))
	assert.True(t, pattern.EqualCount(pattern.ZeroOrOne{}, pattern.ZeroOrOne{}))
	assert.True(t, pattern.EqualCount(pattern.OneOrMany{}, pattern.OneOrMany{}))
	assert.True(t, pattern.EqualCount(pattern.ZeroOrMany{}, pattern.ZeroOrMany{}))
	assert.False(t, pattern.EqualCount(pattern.ZeroOrOne{}, pattern.ZeroOrMany{}))
	assert.False(t, pattern.EqualCount(pattern.Exact{N: 1}, nil))
}

// TestDump_Deterministic verifies the constructor-style dump, including
// nil tolerance, and that equal trees dump identically.
func TestDump_Deterministic(t *testing.T) {
	tree := pattern.Sequence{
		Left:  pattern.Text{Value: "a"},
		Right: pattern.Repeat{Inner: pattern.Digit{}, Count: pattern.Range{Min: 1, Max: pattern.Unbounded}},
	}
	want := `Sequence(Text("a"), Repeat(Digit, Range(1, Unbounded)))`
	assert.Equal(t, want, tree.String())
	assert.Equal(t, tree.String(), tree.String(), "dump must be deterministic")

	assert.Equal(t, `Match(<nil>)`, pattern.Match{}.String())
	assert.Equal(t, `Repeat(<nil>, <nil>)`, pattern.Repeat{}.String())
	assert.Equal(t, `Capture("g", Digit)`, pattern.Capture{Name: "g", Inner: pattern.Digit{}}.String())
	assert.Equal(t, `CharSet("a-z")`, pattern.CharSet{Chars: "a-z"}.String())
	assert.Equal(t, `Exact(0)`, pattern.Exact{}.String())
	assert.Equal(t, `Range(2, 5)`, pattern.Range{Min: 2, Max: 5}.String())
	assert.Equal(t, `ZeroOrOne`, pattern.ZeroOrOne{}.String())
}

// TestWalk_PreOrder verifies visit order (node, left, right) and early stop.
func TestWalk_PreOrder(t *testing.T) {
	tree := pattern.Sequence{
		Left:  pattern.Text{Value: "a"},
		Right: pattern.Sequence{Left: pattern.Digit{}, Right: pattern.Text{Value: "b"}},
	}

	var order []string
	done := pattern.Walk(tree, func(p pattern.Pattern) bool {
		order = append(order, p.String())

		return true
	})
	assert.True(t, done)
	assert.Equal(t, []string{
		`Sequence(Text("a"), Sequence(Digit, Text("b")))`,
		`Text("a")`,
		`Sequence(Digit, Text("b"))`,
		`Digit`,
		`Text("b")`,
	}, order)

	// Early stop after the second visit.
	var n int
	done = pattern.Walk(tree, func(pattern.Pattern) bool {
		n++

		return n < 2
	})
	assert.False(t, done)
	assert.Equal(t, 2, n)
}

// TestWalk_SkipsNilChildren verifies Walk is total over broken shapes.
func TestWalk_SkipsNilChildren(t *testing.T) {
	var visited int
	done := pattern.Walk(pattern.Sequence{Left: pattern.Digit{}}, func(pattern.Pattern) bool {
		visited++

		return true
	})
	assert.True(t, done)
	assert.Equal(t, 2, visited, "sequence node plus its one non-nil child")
}
