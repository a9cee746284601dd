// Package build is the fluent construction facade over rexpr/pattern.
//
// Factories (Text, CharSet, Digit, Raw) and chaining combinators (Then,
// Exactly, Between, Optional, OneOrMore, Many, As, WholeString) assemble
// pattern trees while enforcing per-input contracts at construction time:
// empty literals, empty class bodies, empty capture names, negative or
// inverted repetition bounds, and absent operands are rejected before they
// can enter a tree at all.
//
// This input validation is deliberately distinct from tree-shape
// validation (rexpr/validate): the facade guards leaf data, the validator
// guards structure. A chain never panics; the first construction error is
// carried through the remaining combinators unchanged and surfaced by
// Expr.Pattern. Must is the single documented panic point, intended for
// tests and fixtures in the spirit of regexp.MustCompile.
//
// Example:
//
//	p, err := build.Text("start").
//		Then(build.Digit().Exactly(3)).
//		Then(build.Text("end")).
//		Pattern()
//
// Errors:
//
//	ErrEmptyText     — Text("") was requested.
//	ErrEmptyCharSet  — CharSet("") was requested.
//	ErrNilOperand    — a combinator received an absent pattern operand.
//	ErrNegativeCount — Exactly(n) with n < 0, or Between with min < 0.
//	ErrInvertedRange — Between(min, max) with max < min.
//	ErrEmptyName     — As("") / Capture("", ...) was requested.
package build
