// This file declares the Count tagged union: repetition multiplicity
// descriptors attached to Repeat nodes.

package pattern

import "fmt"

// Unbounded is the sentinel Range.Max value meaning "no upper bound".
const Unbounded = -1

// Count describes how many times a Repeat node's inner pattern occurs.
//
// The variant set is closed: Exact, Range, ZeroOrOne, OneOrMany and
// ZeroOrMany. Like Pattern, every Count is a fmt.Stringer with a
// deterministic constructor-style dump.
type Count interface {
	fmt.Stringer

	// isCount restricts the implementing set to this package.
	isCount()
}

// Exact means exactly N occurrences. N must be ≥ 0; rexpr/build enforces
// this at construction time.
//
// Exact{0} and Exact{1} render with no quantifier token at all.
type Exact struct {
	N int
}

// Range means between Min and Max occurrences inclusive.
// Min must be ≥ 0 and Max must be ≥ Min, or equal to Unbounded.
//
// The code generator picks the minimal token for well-known ranges:
// Range{0,1} renders "?", Range{1,Unbounded} renders "+",
// Range{0,Unbounded} renders "*", Range{n,n} renders "{n}".
type Range struct {
	Min int
	Max int
}

// ZeroOrOne means the inner pattern is optional ("?").
type ZeroOrOne struct{}

// OneOrMany means at least one occurrence ("+").
type OneOrMany struct{}

// ZeroOrMany means any number of occurrences, including none ("*").
type ZeroOrMany struct{}

func (Exact) isCount()      {}
func (Range) isCount()      {}
func (ZeroOrOne) isCount()  {}
func (OneOrMany) isCount()  {}
func (ZeroOrMany) isCount() {}
