// SPDX-License-Identifier: MIT
// Package: rexpr/build
//
// api.go — factories and chaining combinators for pattern construction.
//
// Design contract (strict):
//   - Every factory/combinator validates its own inputs immediately and
//     records the FIRST failure; later combinators are inert once an Expr
//     is failed (deterministic earliest-error propagation).
//   - Expr is an immutable value: each combinator returns a fresh Expr,
//     never mutating its receiver.
//   - The facade guards leaf data only. Tree shape (stacked repetition,
//     nested anchors) is the validator's concern; chains are free to stack
//     repetition and rely on rexpr/optimize to merge it.

package build

import (
	"github.com/katalvlaran/rexpr/pattern"
)

// Expr is a pattern under construction: either a tree node, or the first
// construction error encountered along the chain.
type Expr struct {
	node pattern.Pattern
	err  error
}

// Text starts a chain with a literal. Fails with ErrEmptyText on "".
// Complexity: O(1).
func Text(v string) Expr {
	if v == "" {
		return Expr{err: wrapf("Text", ErrEmptyText)}
	}

	return Expr{node: pattern.Text{Value: v}}
}

// CharSet starts a chain with a character class body such as "a-z0-9".
// Fails with ErrEmptyCharSet on "".
// Complexity: O(1).
func CharSet(chars string) Expr {
	if chars == "" {
		return Expr{err: wrapf("CharSet", ErrEmptyCharSet)}
	}

	return Expr{node: pattern.CharSet{Chars: chars}}
}

// Digit starts a chain matching a single digit.
// Complexity: O(1).
func Digit() Expr {
	return Expr{node: pattern.Digit{}}
}

// Raw lifts a hand-built tree into a chain. Fails with ErrNilOperand on a
// nil tree; no deeper inspection is performed (that is the validator's job).
// Complexity: O(1).
func Raw(p pattern.Pattern) Expr {
	if p == nil {
		return Expr{err: wrapf("Raw", ErrNilOperand)}
	}

	return Expr{node: p}
}

// Capture wraps inner in a named capture group, mirroring Expr.As for
// callers who prefer prefix form. Fails with ErrEmptyName or ErrNilOperand.
// Complexity: O(1).
func Capture(name string, inner Expr) Expr {
	return inner.As(name)
}

// Then appends next to the receiver as an ordered sequence.
// Fails with ErrNilOperand if either operand is absent.
// Complexity: O(1).
func (e Expr) Then(next Expr) Expr {
	if e.err != nil {
		return e
	}
	if next.err != nil {
		return next
	}
	if e.node == nil || next.node == nil {
		return Expr{err: wrapf("Then", ErrNilOperand)}
	}

	return Expr{node: pattern.Sequence{Left: e.node, Right: next.node}}
}

// Exactly repeats the receiver exactly n times.
// Fails with ErrNegativeCount if n < 0.
// Complexity: O(1).
func (e Expr) Exactly(n int) Expr {
	if n < 0 {
		return e.fail(wrapf("Exactly", ErrNegativeCount))
	}

	return e.repeat(pattern.Exact{N: n})
}

// Between repeats the receiver between min and max times inclusive.
// Pass pattern.Unbounded as max for an open upper bound.
// Fails with ErrNegativeCount if min < 0, ErrInvertedRange if max < min
// (Unbounded excepted).
// Complexity: O(1).
func (e Expr) Between(min, max int) Expr {
	if min < 0 {
		return e.fail(wrapf("Between", ErrNegativeCount))
	}
	if max != pattern.Unbounded && max < min {
		return e.fail(wrapf("Between", ErrInvertedRange))
	}

	return e.repeat(pattern.Range{Min: min, Max: max})
}

// Optional makes the receiver match zero or one time.
// Complexity: O(1).
func (e Expr) Optional() Expr { return e.repeat(pattern.ZeroOrOne{}) }

// OneOrMore makes the receiver match one or more times.
// Complexity: O(1).
func (e Expr) OneOrMore() Expr { return e.repeat(pattern.OneOrMany{}) }

// Many makes the receiver match zero or more times.
// Complexity: O(1).
func (e Expr) Many() Expr { return e.repeat(pattern.ZeroOrMany{}) }

// As wraps the receiver in a capture group recorded under name.
// Fails with ErrEmptyName on "" and ErrNilOperand on an absent receiver.
// Complexity: O(1).
func (e Expr) As(name string) Expr {
	if e.err != nil {
		return e
	}
	if name == "" {
		return Expr{err: wrapf("As", ErrEmptyName)}
	}
	if e.node == nil {
		return Expr{err: wrapf("As", ErrNilOperand)}
	}

	return Expr{node: pattern.Capture{Name: name, Inner: e.node}}
}

// WholeString anchors the receiver to the full input (start-to-end).
// Fails with ErrNilOperand on an absent receiver.
// Complexity: O(1).
func (e Expr) WholeString() Expr {
	if e.err != nil {
		return e
	}
	if e.node == nil {
		return Expr{err: wrapf("WholeString", ErrNilOperand)}
	}

	return Expr{node: pattern.Match{Inner: e.node}}
}

// Pattern surfaces the built tree, or the first construction error
// recorded along the chain.
// Complexity: O(1).
func (e Expr) Pattern() (pattern.Pattern, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.node == nil {
		return nil, wrapf("Pattern", ErrNilOperand)
	}

	return e.node, nil
}

// Must surfaces the built tree and panics on any construction error.
// Intended for tests and fixtures, like regexp.MustCompile; production
// chains should call Pattern and branch on the error.
func Must(e Expr) pattern.Pattern {
	p, err := e.Pattern()
	if err != nil {
		panic(err)
	}

	return p
}

// repeat wraps the receiver in a Repeat node with the given count.
func (e Expr) repeat(c pattern.Count) Expr {
	if e.err != nil {
		return e
	}
	if e.node == nil {
		return Expr{err: wrapf("Repeat", ErrNilOperand)}
	}

	return Expr{node: pattern.Repeat{Inner: e.node, Count: c}}
}

// fail records err unless the chain already failed (earliest error wins).
func (e Expr) fail(err error) Expr {
	if e.err != nil {
		return e
	}

	return Expr{err: err}
}
