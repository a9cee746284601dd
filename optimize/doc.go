// Package optimize canonicalizes pattern trees: it rewrites a tree into a
// semantically equivalent, smaller form without ever mutating the input.
//
// # Rewrite rules (applied recursively, bottom-up)
//
//  1. Sequence flattening + literal merge. A Sequence subtree is expanded
//     into the ordered list of its non-Sequence members (associativity
//     removed), empty CharSet members are dropped as dead weight, each
//     member is optimized in place, and immediately adjacent Text members
//     are merged by concatenation — transitively, so a run of three
//     literals becomes one. The list is rebuilt right-associatively
//     (a·(b·(c·d))); a single surviving member is returned bare.
//  2. Repetition count merging. Repeat-of-Repeat collapses into a single
//     Repeat with the merged count:
//     Exact(a)×Exact(b) → Exact(a·b); Exact(0) with ZeroOrOne → ZeroOrOne;
//     Exact(n>0) with OneOrMany → OneOrMany; Exact with ZeroOrMany →
//     ZeroOrMany; equal symbolic counts keep themselves; any other mix of
//     ZeroOrOne/OneOrMany/ZeroOrMany — and any uncovered Exact×symbolic
//     corner — takes the conservative union ZeroOrMany. This union is a
//     deliberate over-approximation, not an exact interval merge.
//     Combinations involving Range are NOT merged: the stack is left in
//     place and rexpr/validate will reject it. Pre-merge Range stacks
//     yourself, or avoid stacking them.
//  3. Capture and Match recurse into their child; the wrapper is kept.
//  4. Leaves (Text, CharSet, Digit) pass through unchanged.
//
// Optimize is a total, pure function: it never fails, never mutates, and
// assumes a well-typed tree (it performs no validation of its own — run
// rexpr/validate before and after when shape guarantees matter).
//
// Complexity: O(|tree|) time over the whole rewrite; literal merging is
// linear in the total merged text length.
package optimize
