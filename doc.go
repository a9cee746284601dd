// Package rexpr is a composable pattern-expression builder: strongly-typed
// pattern fragments assemble into an immutable tree, which a deterministic
// three-stage pipeline validates, canonicalizes, and renders into a
// textual pattern for a host matching engine.
//
// 🚀 What is rexpr?
//
//	A small compiler over pattern trees, organized as focused subpackages:
//		• pattern/  — the tree itself: Pattern & Count variants, equality, dump, walk
//		• build/    — fluent construction facade with construction-time input checks
//		• validate/ — structural validation: fail-fast, single-diagnostic, Result[T]
//		• optimize/ — canonical rewrites: flattening, literal merge, count algebra
//		• codegen/  — deterministic rendering: escaping, minimal grouping & quantifiers
//
// ✨ Why choose rexpr?
//
//   - Pure values – immutable trees, no shared state, trivially safe across goroutines
//   - Deterministic – identical trees always render byte-identical patterns
//   - Honest errors – construction, shape and rendering failures are distinct tiers
//   - Engine-agnostic – rexpr never matches text; it only emits the pattern string
//
// This root package wires the pipeline end-to-end:
//
//	p := build.Must(build.Text("start").Then(build.Digit().Exactly(3)).Then(build.Text("end")))
//	s, err := rexpr.Render(p) // "start\d{3}end"
//
// Render runs validate → optimize → re-validate → generate; Compile
// additionally carries opaque host-engine flags (case-insensitivity,
// multiline, performance mode) that rexpr passes through uninterpreted;
// Describe falls back to the structural dump when a tree is not
// renderable.
//
// Matching itself — feeding the rendered string to a platform engine and
// running it over input — is deliberately outside this module.
//
//	go get github.com/katalvlaran/rexpr
package rexpr
