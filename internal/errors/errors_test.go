package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "tank"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrEquipmentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTankNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrTankNotFound)))
		assert.False(t, IsNotFound(ErrShiftClosed))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this username"}
		assert.Equal(t, "user already exists with this username", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrLicenseExists))
		assert.False(t, IsAlreadyExists(ErrLicenseNotFound))
	})

	t.Run("errors.Is compares entity only", func(t *testing.T) {
		assert.True(t, errors.Is(NewAlreadyExistsError("tank", ""), ErrTankExists))
	})
}

func TestInvalidStateError(t *testing.T) {
	assert.Equal(t, "shift is already closed", ErrShiftClosed.Error())
	assert.True(t, errors.Is(fmt.Errorf("close: %w", ErrShiftClosed), ErrShiftClosed))
	assert.False(t, errors.Is(ErrShiftClosed, ErrShiftAlreadyOpen))
	assert.True(t, IsInvalidState(NewInvalidStateError("ticket is completed")))
	assert.False(t, IsInvalidState(ErrNotShiftHolder))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("end_time", "must be after start_time")
		assert.Equal(t, "validation error: end_time - must be after start_time", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewValidationError("", "malformed payload")
		assert.Equal(t, "validation error: malformed payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("x", "y")))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsUnauthorized(ErrInvalidIncomingCredentials))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("token expired")))
	assert.False(t, IsUnauthorized(ErrNotShiftHolder))
	assert.True(t, IsForbidden(ErrNotShiftHolder))
	assert.True(t, IsForbidden(NewForbiddenError("nope")))
	assert.False(t, IsForbidden(ErrInvalidCredentials))
}

func TestTransactionError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewTransactionError("handover", cause)

	assert.Equal(t, "handover failed and was rolled back: connection reset", err.Error())
	assert.True(t, IsTransaction(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsTransaction(cause))

	wrappedDomain := NewTransactionError("handover", ErrGroupNotFound)
	assert.True(t, IsNotFound(wrappedDomain))
}

func TestIsDomain(t *testing.T) {
	assert.True(t, IsDomain(ErrShiftNotFound))
	assert.True(t, IsDomain(ErrShiftClosed))
	assert.True(t, IsDomain(ErrNotShiftHolder))
	assert.True(t, IsDomain(ErrInvalidCredentials))
	assert.True(t, IsDomain(NewValidationError("a", "b")))
	assert.True(t, IsDomain(ErrUserExists))
	assert.False(t, IsDomain(errors.New("boom")))
	assert.False(t, IsDomain(ErrMalformedPasswordHash))
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrMalformedPasswordHash))
	assert.True(t, IsConfiguration(NewConfigurationError("bad")))
	assert.False(t, IsConfiguration(ErrShiftClosed))
}
