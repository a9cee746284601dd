// This file implements a pre-order traversal over a pattern tree.

package pattern

// Walk visits p and every reachable child in pre-order (node before
// children, left before right) and calls visit for each. Traversal stops
// early when visit returns false; Walk then reports false. Nil children
// are skipped, so Walk is total over any tree shape.
//
// Complexity: O(|tree|) time, O(depth) stack space.
func Walk(p Pattern, visit func(Pattern) bool) bool {
	if p == nil {
		return true
	}
	if !visit(p) {
		return false
	}

	switch n := p.(type) {
	case Sequence:
		return Walk(n.Left, visit) && Walk(n.Right, visit)
	case Repeat:
		return Walk(n.Inner, visit)
	case Capture:
		return Walk(n.Inner, visit)
	case Match:
		return Walk(n.Inner, visit)
	}

	return true
}
