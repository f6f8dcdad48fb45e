package uploaderrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"File is required",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"File is empty",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File exceeds the upload size limit",
		http.StatusRequestEntityTooLarge,
	)
)
