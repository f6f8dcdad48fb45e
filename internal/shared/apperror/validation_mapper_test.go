package apperror_test

import (
	"errors"
	"testing"

	"go-ems/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	FirstName string  `json:"firstName" validate:"required"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Salary    float64 `json:"salary" validate:"gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.JSONTagName)
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "First Name is required", appErr.Message)
	})

	t.Run("email", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{FirstName: "Ann", Email: "nope"}))

		assert.EqualError(t, err, "Email must be a valid email address")
	})

	t.Run("gte", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{FirstName: "Ann", Salary: -1}))

		assert.EqualError(t, err, "Salary must be at least 0")
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("boom"))

		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.EqualError(t, err, "Invalid input")
	})
}
