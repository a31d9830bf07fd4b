package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "name", Message: "name is required"},
		ValidationDetail{Field: "phone", Message: "phone is required"},
	)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 2)
	assert.Equal(t, "name", err.Details[0].Field)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ve)

	_, ok = IsValidationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("order ORD001 not found")

	assert.Equal(t, "order ORD001 not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)

	_, ok = IsNotFoundError(errors.New("plain"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("order id already exists")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "order id already exists", ce.Error())

	_, ok = IsConflictError(NewNotFoundError("nope"))
	assert.False(t, ok)
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("querying orders", cause)

	assert.Equal(t, "querying orders: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), cause))

	bare := NewInternalError("no cause", nil)
	assert.Equal(t, "no cause", bare.Error())
}
