package employee

import (
	"time"

	"go-ems/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var now = time.Now

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.JSONTagName)
	_ = v.RegisterValidation("notfuture", notFuture)
	return v
}

// notFuture compares civil dates, so a join date of today is valid.
func notFuture(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	y, m, day := now().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).After(today)
}

// Validate checks a record before it is written.
func Validate(e Employee) error {
	if err := validate.Struct(e); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}
