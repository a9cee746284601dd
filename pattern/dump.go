// This file implements the deterministic constructor-style dump for
// Pattern and Count values.
//
// The dump is a total function: it never fails, accepts any tree shape
// (including shapes the validator rejects and nil children), and renders
// byte-identical output for structurally equal trees. It is the
// best-effort fallback used by rexpr.Describe when a tree cannot be
// rendered to a pattern string.

package pattern

import (
	"fmt"
	"strconv"
)

// nilDump stands in for an absent child in a dump.
const nilDump = "<nil>"

// String returns e.g. Text("abc").
func (t Text) String() string { return "Text(" + strconv.Quote(t.Value) + ")" }

// String returns e.g. CharSet("a-z").
func (c CharSet) String() string { return "CharSet(" + strconv.Quote(c.Chars) + ")" }

// String returns Digit.
func (Digit) String() string { return "Digit" }

// String returns e.g. Sequence(Text("a"), Digit).
func (s Sequence) String() string {
	return "Sequence(" + dumpChild(s.Left) + ", " + dumpChild(s.Right) + ")"
}

// String returns e.g. Repeat(Digit, Exact(3)).
func (r Repeat) String() string {
	count := nilDump
	if r.Count != nil {
		count = r.Count.String()
	}

	return "Repeat(" + dumpChild(r.Inner) + ", " + count + ")"
}

// String returns e.g. Capture("year", Digit).
func (c Capture) String() string {
	return "Capture(" + strconv.Quote(c.Name) + ", " + dumpChild(c.Inner) + ")"
}

// String returns e.g. Match(Text("a")).
func (m Match) String() string { return "Match(" + dumpChild(m.Inner) + ")" }

// String returns e.g. Exact(3).
func (e Exact) String() string { return "Exact(" + strconv.Itoa(e.N) + ")" }

// String returns e.g. Range(2, 5); an unbounded max prints as Unbounded.
func (r Range) String() string {
	if r.Max == Unbounded {
		return fmt.Sprintf("Range(%d, Unbounded)", r.Min)
	}

	return fmt.Sprintf("Range(%d, %d)", r.Min, r.Max)
}

// String returns ZeroOrOne.
func (ZeroOrOne) String() string { return "ZeroOrOne" }

// String returns OneOrMany.
func (OneOrMany) String() string { return "OneOrMany" }

// String returns ZeroOrMany.
func (ZeroOrMany) String() string { return "ZeroOrMany" }

// dumpChild renders a child node, tolerating nil.
func dumpChild(p Pattern) string {
	if p == nil {
		return nilDump
	}

	return p.String()
}
