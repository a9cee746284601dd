// SPDX-License-Identifier: MIT
// Package: rexpr/optimize
//
// counts.go — repetition count algebra for collapsing stacked Repeat nodes.

package optimize

import (
	"github.com/katalvlaran/rexpr/pattern"
)

// mergeCounts combines the counts of a stacked repetition
// Repeat(Repeat(x, inner), outer) into the single equivalent count.
// The table is symmetric where the doc comment says "either order".
//
// The second return is false when the pair cannot be merged — any
// combination involving a Range — in which case the caller must leave the
// stack in place.
//
// Complexity: O(1).
func mergeCounts(inner, outer pattern.Count) (pattern.Count, bool) {
	// Range participates in no merge rule; bail out before inspection.
	if _, ok := inner.(pattern.Range); ok {
		return nil, false
	}
	if _, ok := outer.(pattern.Range); ok {
		return nil, false
	}

	innerExact, innerIsExact := inner.(pattern.Exact)
	outerExact, outerIsExact := outer.(pattern.Exact)

	switch {
	case innerIsExact && outerIsExact:
		// n inner repetitions taken m times is n·m repetitions.
		return pattern.Exact{N: innerExact.N * outerExact.N}, true
	case innerIsExact:
		return mergeExactSymbolic(innerExact, outer), true
	case outerIsExact:
		return mergeExactSymbolic(outerExact, inner), true
	default:
		return mergeSymbolic(inner, outer), true
	}
}

// mergeExactSymbolic combines an Exact count with a symbolic count
// (ZeroOrOne, OneOrMany or ZeroOrMany), order-independent:
//
//	Exact(0)   with ZeroOrOne  → ZeroOrOne
//	Exact(n>0) with OneOrMany  → OneOrMany
//	Exact(n)   with ZeroOrMany → ZeroOrMany
//
// Uncovered corners (Exact(n>0) with ZeroOrOne, Exact(0) with OneOrMany)
// take the conservative union ZeroOrMany — a known over-approximation
// kept deliberately; see the package doc.
func mergeExactSymbolic(e pattern.Exact, sym pattern.Count) pattern.Count {
	switch sym.(type) {
	case pattern.ZeroOrOne:
		if e.N == 0 {
			return pattern.ZeroOrOne{}
		}
	case pattern.OneOrMany:
		if e.N > 0 {
			return pattern.OneOrMany{}
		}
	}

	return pattern.ZeroOrMany{}
}

// mergeSymbolic combines two symbolic counts: equal variants keep
// themselves, any mix widens to the conservative union ZeroOrMany
// (zero-or-one of one-or-many can express zero, one, or many).
func mergeSymbolic(a, b pattern.Count) pattern.Count {
	switch a.(type) {
	case pattern.ZeroOrOne:
		if _, same := b.(pattern.ZeroOrOne); same {
			return pattern.ZeroOrOne{}
		}
	case pattern.OneOrMany:
		if _, same := b.(pattern.OneOrMany); same {
			return pattern.OneOrMany{}
		}
	}

	return pattern.ZeroOrMany{}
}
