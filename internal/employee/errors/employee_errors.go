package employeeerrors

import (
	"fmt"
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status value",
		http.StatusBadRequest,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee data format",
		http.StatusBadRequest,
	)
)

// InvalidPayload reports a body that is neither an object nor a strict record.
func InvalidPayload(receivedType string) error {
	return apperror.Wrap(
		fmt.Errorf("received %s: %w", receivedType, ErrInvalidPayload),
		ErrInvalidPayload.Code,
		ErrInvalidPayload.Message,
		ErrInvalidPayload.HTTPStatus,
	)
}
