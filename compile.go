// SPDX-License-Identifier: MIT
// Package: rexpr
//
// compile.go — end-to-end pipeline: validate → optimize → re-validate → generate.
//
// Design contract (strict):
//   - Validation runs BOTH before and after optimization: a hand-built tree
//     must be rejected before the optimizer trusts it, and the generator
//     must never see a shape the validator would refuse (Range stacking is
//     the one rewrite the optimizer knowingly leaves invalid).
//   - A tree that fails validation never yields a rendered string; callers
//     wanting best-effort output use Describe, which falls back to the
//     structural dump.
//   - Determinism: equal trees and equal options produce byte-identical
//     results.

package rexpr

import (
	"github.com/katalvlaran/rexpr/codegen"
	"github.com/katalvlaran/rexpr/optimize"
	"github.com/katalvlaran/rexpr/pattern"
	"github.com/katalvlaran/rexpr/validate"
)

// Compiled is the pipeline's final product: the rendered pattern string
// plus the opaque host-engine flags resolved from Compile's options.
// Hand both to the host engine constructor; rexpr interprets neither.
type Compiled struct {
	// Expr is the rendered pattern in the target pattern language.
	Expr string

	// Flags are pass-through engine options (see options.go).
	Flags Flags
}

// Render validates p, canonicalizes it, re-validates the result, and
// renders it. On any validation failure the first diagnostic is returned
// and no string is produced.
//
// Complexity: O(|tree| + output length).
func Render(p pattern.Pattern) (string, error) {
	tree, err := validate.Validate(p).
		Map(optimize.Optimize).
		Bind(validate.Validate).
		Unwrap()
	if err != nil {
		return "", err
	}

	return codegen.Generate(tree)
}

// Compile runs the same pipeline as Render and bundles the rendered
// pattern with the resolved pass-through engine flags.
//
// Complexity: O(|tree| + output length + len(opts)).
func Compile(p pattern.Pattern, opts ...Option) (Compiled, error) {
	expr, err := Render(p)
	if err != nil {
		return Compiled{}, err
	}

	return Compiled{Expr: expr, Flags: newConfig(opts...).flags}, nil
}

// Describe returns the rendered pattern when p is renderable, and the
// deterministic structural dump otherwise. It never fails; use it for
// logging and diagnostics, never as engine input.
//
// Complexity: O(|tree| + output length).
func Describe(p pattern.Pattern) string {
	if s, err := Render(p); err == nil {
		return s
	}
	if p == nil {
		return "<nil>"
	}

	return p.String()
}
