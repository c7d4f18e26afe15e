package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type duplicateKeyError struct {
	Column string
}

func (e duplicateKeyError) Error() string { return "duplicate value for " + e.Column }

func TestNew(t *testing.T) {
	err := New("identity store unavailable")
	require.Error(t, err)
	assert.Equal(t, "identity store unavailable", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("keeps the sentinel matchable", func(t *testing.T) {
		err := Wrap(ErrNotFound, "identity not found")
		require.Error(t, err)
		assert.Equal(t, "identity not found: not found", err.Error())
		assert.True(t, Is(err, ErrNotFound))
		assert.False(t, Is(err, ErrConflict))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("double wrap", func(t *testing.T) {
		err := Wrap(Wrap(ErrConflict, "employee id already exists"), "failed to create identity")
		assert.True(t, Is(err, ErrConflict))
		assert.Equal(t, "failed to create identity: employee id already exists: conflict", err.Error())
	})
}

func TestAs(t *testing.T) {
	base := duplicateKeyError{Column: "primary_email"}
	err := Wrap(base, "insert failed")

	var target duplicateKeyError
	require.True(t, As(err, &target))
	assert.Equal(t, "primary_email", target.Column)

	var other *duplicateKeyError
	assert.False(t, As(errors.New("plain"), &other))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}
