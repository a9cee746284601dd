// This file implements Result, the two-variant outcome type produced by
// Validate and composed by the rexpr pipeline.
//
// Result carries either a success value or an error, never both. Map and
// Bind sequence monadically: once a Result is failed, every further stage
// is skipped and the EARLIEST error is preserved unchanged.

package validate

// Result holds either a success value of type T or an error.
// The zero Result is a success carrying T's zero value; prefer the Ok and
// Fail constructors for clarity.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps v as a successful Result. Complexity: O(1).
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps err as a failed Result. Complexity: O(1).
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the Result carries a success value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Err returns the carried error, or nil on success.
func (r Result[T]) Err() error { return r.err }

// Value returns the carried success value; on failure it returns T's zero
// value. Use Unwrap when the error must be observed.
func (r Result[T]) Value() T { return r.value }

// Unwrap splits the Result into Go's conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Map applies fn to the success value and re-wraps the outcome.
// A failed Result is returned unchanged (fn is not called).
// Complexity: O(1) plus the cost of fn.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.err != nil {
		return r
	}

	return Ok(fn(r.value))
}

// Bind applies fn to the success value and returns fn's Result directly.
// A failed Result is returned unchanged (fn is not called), so the first
// error in a chain short-circuits everything after it.
// Complexity: O(1) plus the cost of fn.
func (r Result[T]) Bind(fn func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}

	return fn(r.value)
}
