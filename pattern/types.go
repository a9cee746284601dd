// This file declares the Pattern tagged union: the closed set of node
// variants forming a pattern-expression tree.
//
// Design contract (strict):
//   - Closed variant set: Text, CharSet, Digit, Sequence, Repeat, Capture, Match.
//     Every consumer (validate, optimize, codegen) type-switches over exactly
//     this set; a default branch is a defect guard, not an extension point.
//   - Nodes are immutable values. Children are boxed behind the Pattern
//     interface; rebuilding a tree always allocates fresh nodes.
//   - No behavior beyond structural identity lives here (see equal.go, dump.go).

package pattern

import "fmt"

// Pattern is a node in the pattern-expression tree.
//
// The variant set is closed: only the seven types declared in this file
// implement it. Every Pattern is also a fmt.Stringer; String returns the
// deterministic constructor-style dump (see dump.go), which doubles as the
// best-effort textual fallback for trees that fail validation.
type Pattern interface {
	fmt.Stringer

	// isPattern restricts the implementing set to this package.
	isPattern()
}

// Text matches its Value verbatim. The code generator escapes any
// pattern-language metacharacters inside Value.
//
// A renderable Text has a non-empty Value; rexpr/build enforces this at
// construction time and rexpr/validate re-checks it for hand-built trees.
type Text struct {
	// Value is the literal content to match.
	Value string
}

// CharSet matches one character out of its class body Chars, e.g. "abc"
// or "a-z0-9". Chars may contain range syntax; the code generator decides
// which hyphens denote ranges and escapes the rest.
//
// A renderable CharSet has non-empty Chars.
type CharSet struct {
	// Chars is the character-class body, without the surrounding brackets.
	Chars string
}

// Digit matches a single digit. It carries no data.
type Digit struct{}

// Sequence matches Left followed immediately by Right.
// Both children are required; a nil child fails validation.
type Sequence struct {
	Left  Pattern
	Right Pattern
}

// Repeat matches Inner repeated according to Count.
//
// Invariant: Inner must not itself be a Repeat. Stacked repetition is
// merged by rexpr/optimize; a tree that still stacks repetition is
// rejected by rexpr/validate.
type Repeat struct {
	Inner Pattern
	Count Count
}

// Capture matches Inner and records the match under Name.
// Name must be non-empty; Inner is required.
type Capture struct {
	Name  string
	Inner Pattern
}

// Match anchors Inner to the full input, start-to-end.
//
// Invariant: Inner must not itself be a Match. Nested anchoring is
// structurally illegal and rejected by rexpr/validate.
type Match struct {
	Inner Pattern
}

func (Text) isPattern()     {}
func (CharSet) isPattern()  {}
func (Digit) isPattern()    {}
func (Sequence) isPattern() {}
func (Repeat) isPattern()   {}
func (Capture) isPattern()  {}
func (Match) isPattern()    {}
