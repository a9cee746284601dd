// SPDX-License-Identifier: MIT
// Package: rexpr
//
// options.go — opaque host-engine flags, resolved via functional options.
//
// Contract (strict):
//   • rexpr NEVER interprets these flags: they ride along in Compiled and
//     the caller forwards them verbatim to the host engine constructor.
//   • Options are functional (Option func(*config)); no global state.
//   • Applying the same options always resolves to the same Flags value.

package rexpr

// Flags is an opaque bit set of host-engine settings. rexpr only carries
// it; the host engine defines its meaning.
type Flags uint8

const (
	// FlagCaseInsensitive requests case-insensitive matching from the host engine.
	FlagCaseInsensitive Flags = 1 << iota

	// FlagMultiline requests multiline mode from the host engine.
	FlagMultiline

	// FlagPerformance requests the host engine's performance-optimized mode.
	FlagPerformance
)

// Has reports whether every bit of f2 is set in f.
// Complexity: O(1).
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// config is the resolved, immutable option state for one Compile call.
type config struct {
	flags Flags
}

// Option customizes a Compile call by mutating the config being resolved.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithCaseInsensitive marks the compiled pattern for case-insensitive
// matching. Complexity: O(1).
func WithCaseInsensitive() Option {
	return func(c *config) { c.flags |= FlagCaseInsensitive }
}

// WithMultiline marks the compiled pattern for multiline matching.
// Complexity: O(1).
func WithMultiline() Option {
	return func(c *config) { c.flags |= FlagMultiline }
}

// WithPerformanceMode marks the compiled pattern for the host engine's
// performance mode. Complexity: O(1).
func WithPerformanceMode() Option {
	return func(c *config) { c.flags |= FlagPerformance }
}

// newConfig resolves opts into an immutable config.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
