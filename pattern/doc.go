// Package pattern defines the immutable pattern-expression tree: the
// Pattern node variants, the Count repetition descriptors, structural
// equality, a deterministic tree dump, and a pre-order walk.
//
// The tree is a pure value type. Every node owns its children outright
// (a tree, never a graph — nodes are built bottom-up from already
// constructed values, so sharing and cycles are impossible), and no node
// is ever mutated after construction. Rewrites elsewhere in the module
// (see rexpr/optimize) always produce fresh nodes.
//
// Pattern variants:
//
//	Text     — literal content, matched verbatim
//	CharSet  — a character-class body such as "abc" or "a-z0-9"
//	Digit    — a single digit
//	Sequence — ordered concatenation of two sub-patterns
//	Repeat   — repetition of a sub-pattern per a Count
//	Capture  — named capture group around a sub-pattern
//	Match    — anchors a sub-pattern to the whole input (start-to-end)
//
// Count variants:
//
//	Exact      — exactly N occurrences (N ≥ 0)
//	Range      — between Min and Max occurrences; Max may be Unbounded
//	ZeroOrOne  — optional occurrence
//	OneOrMany  — at least one occurrence
//	ZeroOrMany — any number of occurrences
//
// This package carries no construction-time validation: a tree may be
// hand-assembled in any shape, including shapes the validator rejects.
// Use rexpr/build for checked construction and rexpr/validate to decide
// whether a tree is renderable.
package pattern
