// SPDX-License-Identifier: MIT
// Package: rexpr/optimize
//
// optimize.go — tree canonicalization: flattening, literal merge, and
// recursion scaffolding. Count algebra lives in counts.go.

package optimize

import (
	"github.com/katalvlaran/rexpr/pattern"
)

// Optimize rewrites p into its canonical equivalent. The input tree is
// never mutated; every rewritten node is freshly built. Optimize never
// fails and performs no validation (see package doc for the one Range
// stacking caveat).
//
// Complexity: O(|tree|) time, O(depth + width) space for rebuilds.
func Optimize(p pattern.Pattern) pattern.Pattern {
	switch n := p.(type) {
	case pattern.Sequence:
		return optimizeSequence(n)
	case pattern.Repeat:
		return optimizeRepeat(n)
	case pattern.Capture:
		return pattern.Capture{Name: n.Name, Inner: Optimize(n.Inner)}
	case pattern.Match:
		return pattern.Match{Inner: Optimize(n.Inner)}
	default:
		// Leaves (Text, CharSet, Digit) are already canonical.
		return p
	}
}

// optimizeSequence flattens s, drops empty CharSet members, optimizes the
// survivors, merges adjacent literals, and rebuilds right-associatively.
func optimizeSequence(s pattern.Sequence) pattern.Pattern {
	// Flatten the whole subtree into its ordered non-Sequence members.
	flat := flatten(s, nil)

	// Filter dead weight and canonicalize each surviving member.
	// Flattening guarantees no member is itself a Sequence.
	members := make([]pattern.Pattern, 0, len(flat))
	for _, m := range flat {
		if cs, ok := m.(pattern.CharSet); ok && cs.Chars == "" {
			continue
		}
		members = append(members, Optimize(m))
	}

	members = mergeAdjacentText(members)

	switch len(members) {
	case 0:
		// Unreachable for well-formed trees (leaves are non-empty); keep
		// the input subtree rather than invent an empty node.
		return s
	case 1:
		return members[0]
	default:
		return rebuild(members)
	}
}

// flatten appends the non-Sequence members of p to acc in left-to-right
// order, recursing through any Sequence nesting.
func flatten(p pattern.Pattern, acc []pattern.Pattern) []pattern.Pattern {
	if s, ok := p.(pattern.Sequence); ok {
		acc = flatten(s.Left, acc)

		return flatten(s.Right, acc)
	}

	return append(acc, p)
}

// mergeAdjacentText concatenates runs of adjacent Text members into a
// single literal, preserving left-to-right order.
func mergeAdjacentText(members []pattern.Pattern) []pattern.Pattern {
	merged := make([]pattern.Pattern, 0, len(members))
	for _, m := range members {
		if t, ok := m.(pattern.Text); ok && len(merged) > 0 {
			if prev, ok := merged[len(merged)-1].(pattern.Text); ok {
				merged[len(merged)-1] = pattern.Text{Value: prev.Value + t.Value}

				continue
			}
		}
		merged = append(merged, m)
	}

	return merged
}

// rebuild nests members into a right-associative Sequence chain:
// a·(b·(c·d)). Requires len(members) ≥ 2.
func rebuild(members []pattern.Pattern) pattern.Pattern {
	chain := members[len(members)-1]
	for i := len(members) - 2; i >= 0; i-- {
		chain = pattern.Sequence{Left: members[i], Right: chain}
	}

	return chain
}

// optimizeRepeat canonicalizes the inner pattern first, then collapses a
// resulting Repeat-of-Repeat via the count algebra. Stacks involving a
// Range count are left as-is (see package doc).
func optimizeRepeat(r pattern.Repeat) pattern.Pattern {
	inner := Optimize(r.Inner)

	stacked, ok := inner.(pattern.Repeat)
	if !ok {
		return pattern.Repeat{Inner: inner, Count: r.Count}
	}

	merged, mergeable := mergeCounts(stacked.Count, r.Count)
	if !mergeable {
		return pattern.Repeat{Inner: stacked, Count: r.Count}
	}

	return pattern.Repeat{Inner: stacked.Inner, Count: merged}
}
