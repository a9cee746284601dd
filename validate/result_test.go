package validate_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rexpr/validate"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

// TestResult_Constructors verifies the Ok/Fail accessors.
func TestResult_Constructors(t *testing.T) {
	ok := validate.Ok(7)
	assert.True(t, ok.IsOk())
	assert.NoError(t, ok.Err())
	assert.Equal(t, 7, ok.Value())

	fail := validate.Fail[int](errBoom)
	assert.False(t, fail.IsOk())
	assert.ErrorIs(t, fail.Err(), errBoom)
	assert.Zero(t, fail.Value(), "failed Result yields the zero value")

	v, err := fail.Unwrap()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, errBoom)
}

// TestResult_Map verifies mapping over success and the failed no-op.
func TestResult_Map(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, 6, validate.Ok(3).Map(double).Value())

	called := false
	res := validate.Fail[int](errBoom).Map(func(n int) int {
		called = true

		return n
	})
	assert.False(t, called, "Map must not run on a failed Result")
	assert.ErrorIs(t, res.Err(), errBoom)
}

// TestResult_Bind verifies monadic sequencing and first-error preservation.
func TestResult_Bind(t *testing.T) {
	errLater := errors.New("later")
	half := func(n int) validate.Result[int] {
		if n%2 != 0 {
			return validate.Fail[int](errLater)
		}

		return validate.Ok(n / 2)
	}

	assert.Equal(t, 2, validate.Ok(4).Bind(half).Value())
	assert.ErrorIs(t, validate.Ok(3).Bind(half).Err(), errLater)

	// A chain short-circuits on the FIRST failure; later stages never run
	// and cannot overwrite the error.
	res := validate.Fail[int](errBoom).Bind(half).Map(func(n int) int { return n + 1 })
	assert.ErrorIs(t, res.Err(), errBoom)
	assert.NotErrorIs(t, res.Err(), errLater)
}
