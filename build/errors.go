// SPDX-License-Identifier: MIT
// Package: rexpr/build
//
// errors.go — sentinel errors for the construction facade.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Combinators attach method context via %w wrapping (see wrapf).
//   • The facade MUST NOT panic; Must is the sole, documented exception.

package build

import (
	"errors"
	"fmt"
)

// ErrEmptyText indicates that a literal factory received an empty string.
// Usage: if errors.Is(err, ErrEmptyText) { /* supply non-empty literal */ }.
var ErrEmptyText = errors.New("build: text value must be non-empty")

// ErrEmptyCharSet indicates that a character-class factory received an
// empty class body.
// Usage: if errors.Is(err, ErrEmptyCharSet) { /* supply class body */ }.
var ErrEmptyCharSet = errors.New("build: char set must be non-empty")

// ErrNilOperand indicates a combinator was handed an absent pattern
// (a zero Expr, a nil tree via Raw, or a nil sequencing operand).
// Usage: if errors.Is(err, ErrNilOperand) { /* build the operand first */ }.
var ErrNilOperand = errors.New("build: pattern operand is required")

// ErrNegativeCount indicates a repetition bound below zero.
// Usage: if errors.Is(err, ErrNegativeCount) { /* fix n or min */ }.
var ErrNegativeCount = errors.New("build: repetition count must be ≥ 0")

// ErrInvertedRange indicates Between(min, max) with max < min.
// Usage: if errors.Is(err, ErrInvertedRange) { /* swap or fix bounds */ }.
var ErrInvertedRange = errors.New("build: range max must be ≥ min")

// ErrEmptyName indicates an empty capture-group name.
// Usage: if errors.Is(err, ErrEmptyName) { /* name the capture */ }.
var ErrEmptyName = errors.New("build: capture name must be non-empty")

// wrapf prefixes a sentinel with the combinator name while preserving it
// for errors.Is, yielding "<Method>: <sentinel text>".
// Complexity: O(1).
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
