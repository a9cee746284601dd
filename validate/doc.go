// Package validate decides whether a pattern tree is renderable:
// structurally legal input for rexpr/codegen.
//
// Validate walks the tree depth-first (node before children, left before
// right) and reports the earliest violation it encounters as a single
// diagnostic — defects are never aggregated; callers fix and re-validate.
// Success echoes the input tree unchanged inside a Result.
//
// Checks, in encounter order at each node:
//
//   - an absent root or child pattern (distinguished by parent kind:
//     sequence-left, sequence-right, repeat-inner, capture-inner,
//     match-inner)
//   - a Match directly inside a Match (nested anchoring)
//   - a Repeat directly inside a Repeat (stacked repetition — run
//     rexpr/optimize first, or build trees that never stack)
//   - a Capture with an empty name
//   - a Text with an empty value, a CharSet with an empty body (enforced
//     again here because trees may be hand-built, bypassing rexpr/build)
//
// Validation is binary: success, or exactly one diagnostic. The
// diagnostic sentinels in errors.go carry fixed wording that external
// tooling string-matches on; branch on them with errors.Is, and never
// re-word them.
package validate
