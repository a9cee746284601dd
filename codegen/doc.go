// Package codegen renders a validated pattern tree into its textual
// pattern-language form.
//
// # Rendering rules
//
//   - Text emits its literal with every metacharacter in .^$*+?()[]{}|\
//     escaped by a preceding backslash.
//   - Digit emits the digit-class token \d.
//   - CharSet emits [body] with ], \ and ^ always escaped, and a hyphen
//     escaped unless it sits between two same-class alphanumeric endpoints
//     in ascending order (a-z, A-Z or 0-9 style): a leading, trailing or
//     non-range hyphen must not acquire accidental range semantics.
//   - Sequence emits left then right with no separator.
//   - Repeat emits its inner pattern, wrapped in a non-capturing group
//     (?:...) only when the inner node is not self-delimiting — Text,
//     Digit, CharSet and Capture bind tightly and go ungrouped — followed
//     by the minimal quantifier token: Exact(0) and Exact(1) none,
//     Exact(n) {n}; Range(0,1) ?, Range(1,∞) +, Range(0,∞) *,
//     Range(n,n) {n}, Range(n,∞) {n,}, Range(n,m) {n,m};
//     ZeroOrOne ?, OneOrMany +, ZeroOrMany *.
//   - Capture emits (?<name>...), Match emits ^...$.
//
// Generate assumes its input already passed rexpr/validate; the only
// failure mode is an unrecognized node or count variant, which signals a
// breach of the closed variant set (a corrupted or extended tree), not a
// user input problem. Output is deterministic: structurally equal trees
// always render byte-identically.
package codegen
