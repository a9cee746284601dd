// SPDX-License-Identifier: MIT
// Package: rexpr/validate
//
// errors.go — diagnostic sentinels for structural validation.
//
// Contract (strict):
//   • The Error() text of every sentinel below is a cross-tool contract:
//     external tooling string-matches these exact messages. They carry no
//     package prefix and MUST NOT be re-worded, ever.
//   • Callers still branch with errors.Is(err, ErrX); the wording contract
//     exists for tools outside this module, not as a license to compare
//     strings in Go code.
//   • Validate reports exactly one sentinel per run: the earliest,
//     depth-first violation.

package validate

import "errors"

// ErrNilPattern indicates the tree root itself is absent.
var ErrNilPattern = errors.New("Pattern cannot be null")

// ErrNestedMatch indicates a Match node directly inside another Match.
var ErrNestedMatch = errors.New("Nested Match patterns are not allowed")

// ErrNilMatchInner indicates a Match node with an absent inner pattern.
var ErrNilMatchInner = errors.New("Match pattern cannot contain null inner pattern")

// ErrStackedRepeat indicates a Repeat node directly inside another Repeat.
// The optimizer merges such stacks; a valid tree never contains one.
var ErrStackedRepeat = errors.New("Stacked repetition patterns must be merged")

// ErrNilRepeatInner indicates a Repeat node with an absent inner pattern.
var ErrNilRepeatInner = errors.New("Repeat pattern cannot contain null inner pattern")

// ErrNilSequenceLeft indicates a Sequence node with an absent left child.
var ErrNilSequenceLeft = errors.New("Sequence pattern cannot contain null left pattern")

// ErrNilSequenceRight indicates a Sequence node with an absent right child.
var ErrNilSequenceRight = errors.New("Sequence pattern cannot contain null right pattern")

// ErrNilCaptureInner indicates a Capture node with an absent inner pattern.
var ErrNilCaptureInner = errors.New("Capture pattern cannot contain null inner pattern")

// ErrEmptyCaptureName indicates a Capture node with an empty group name.
var ErrEmptyCaptureName = errors.New("Capture pattern must have a non-empty name")

// ErrEmptyTextValue indicates a Text node with an empty literal value.
var ErrEmptyTextValue = errors.New("Text pattern cannot have null or empty value")

// ErrEmptyCharSet indicates a CharSet node with an empty class body.
var ErrEmptyCharSet = errors.New("CharSet pattern cannot have null or empty characters")
