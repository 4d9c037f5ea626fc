package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError("roster", "Add", ErrAlreadyExists, "student already enrolled")
	assert.Equal(t, "roster.Add: student already enrolled", err.Error())

	wrapped := WrapError("gradebook", "Load", ErrIO, "read failed", errors.New("disk on fire"))
	assert.Equal(t, "gradebook.Load: read failed: disk on fire", wrapped.Error())
}

func TestDomainError_Is(t *testing.T) {
	err := NewDomainError("roster", "Add", ErrAlreadyExists, "student already enrolled")

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Matching works through further wrapping too.
	further := fmt.Errorf("enroll: %w", err)
	assert.ErrorIs(t, further, ErrAlreadyExists)
	assert.True(t, IsAlreadyExists(further))
}

func TestDomainError_UnwrapsUnderlying(t *testing.T) {
	underlying := errors.New("disk on fire")
	err := WrapError("gradebook", "Load", ErrIO, "read failed", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.ErrorIs(t, err, ErrIO)
}

func TestCategoryHelpers(t *testing.T) {
	validation := NewDomainError("student", "Validate", ErrEmptyValue, "name empty")
	assert.True(t, IsValidation(validation))
	assert.False(t, IsArgument(validation))

	argument := NewDomainError("roster", "Find", ErrNilValue, "predicate nil")
	assert.True(t, IsArgument(argument))
	assert.False(t, IsValidation(argument))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(errors.New("unrelated")))
}
