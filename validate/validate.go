// SPDX-License-Identifier: MIT
// Package: rexpr/validate
//
// validate.go — depth-first structural validation of pattern trees.

package validate

import (
	"fmt"

	"github.com/katalvlaran/rexpr/pattern"
)

// Validate decides whether p is renderable. On success the Result echoes
// p unchanged; on failure it carries the earliest depth-first diagnostic
// (one of the sentinels in errors.go). No aggregation: exactly one defect
// is reported per run.
//
// Complexity: O(|tree|) time, O(depth) stack space.
func Validate(p pattern.Pattern) Result[pattern.Pattern] {
	if err := Check(p); err != nil {
		return Fail[pattern.Pattern](err)
	}

	return Ok(p)
}

// Check is the error-returning form of Validate for callers that do not
// need Result composition. A nil return means p is renderable.
//
// Complexity: O(|tree|) time, O(depth) stack space.
func Check(p pattern.Pattern) error {
	if p == nil {
		return ErrNilPattern
	}

	return check(p)
}

// check walks a non-nil subtree depth-first, returning the first
// violation encountered, or nil.
func check(p pattern.Pattern) error {
	switch n := p.(type) {
	case pattern.Text:
		if n.Value == "" {
			return ErrEmptyTextValue
		}
	case pattern.CharSet:
		if n.Chars == "" {
			return ErrEmptyCharSet
		}
	case pattern.Digit:
		// No payload to inspect.
	case pattern.Sequence:
		if n.Left == nil {
			return ErrNilSequenceLeft
		}
		if err := check(n.Left); err != nil {
			return err
		}
		if n.Right == nil {
			return ErrNilSequenceRight
		}

		return check(n.Right)
	case pattern.Repeat:
		if n.Inner == nil {
			return ErrNilRepeatInner
		}
		if _, stacked := n.Inner.(pattern.Repeat); stacked {
			return ErrStackedRepeat
		}

		return check(n.Inner)
	case pattern.Capture:
		if n.Inner == nil {
			return ErrNilCaptureInner
		}
		if n.Name == "" {
			return ErrEmptyCaptureName
		}

		return check(n.Inner)
	case pattern.Match:
		if n.Inner == nil {
			return ErrNilMatchInner
		}
		if _, nested := n.Inner.(pattern.Match); nested {
			return ErrNestedMatch
		}

		return check(n.Inner)
	default:
		// Unreachable for the closed variant set; guards corrupted trees.
		return fmt.Errorf("validate: unrecognized pattern node %T", p)
	}

	return nil
}
