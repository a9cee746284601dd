// This file implements structural equality over Pattern and Count values.
//
// Equality is deep and exact: two trees are equal iff they have the same
// shape, the same variants at every node, and identical payloads. Nil
// children compare equal only to nil.

package pattern

// Equal reports whether a and b are structurally identical trees.
// Complexity: O(min(|a|, |b|)) time, O(depth) stack space.
func Equal(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)

		return ok && x.Value == y.Value
	case CharSet:
		y, ok := b.(CharSet)

		return ok && x.Chars == y.Chars
	case Digit:
		_, ok := b.(Digit)

		return ok
	case Sequence:
		y, ok := b.(Sequence)

		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Repeat:
		y, ok := b.(Repeat)

		return ok && EqualCount(x.Count, y.Count) && Equal(x.Inner, y.Inner)
	case Capture:
		y, ok := b.(Capture)

		return ok && x.Name == y.Name && Equal(x.Inner, y.Inner)
	case Match:
		y, ok := b.(Match)

		return ok && Equal(x.Inner, y.Inner)
	}

	return false
}

// EqualCount reports whether a and b are the same Count variant with the
// same payload. Complexity: O(1).
func EqualCount(a, b Count) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Exact:
		y, ok := b.(Exact)

		return ok && x.N == y.N
	case Range:
		y, ok := b.(Range)

		return ok && x.Min == y.Min && x.Max == y.Max
	case ZeroOrOne:
		_, ok := b.(ZeroOrOne)

		return ok
	case OneOrMany:
		_, ok := b.(OneOrMany)

		return ok
	case ZeroOrMany:
		_, ok := b.(ZeroOrMany)

		return ok
	}

	return false
}
