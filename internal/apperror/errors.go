package apperror

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeDuplicate     ErrorCode = "DUPLICATE"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"

	// ErrCodeDB marks failures the caller cannot fix; everything else is a business rule.
	ErrCodeDB ErrorCode = "DB_ERROR"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func Required(field string) *AppError {
	return New(ErrCodeRequiredField, "Missing required field: "+field, nil)
}

func Invalid(message string, err error) *AppError {
	return New(ErrCodeInvalidFormat, message, err)
}

func Validation(message string) *AppError {
	return New(ErrCodeValidation, message, nil)
}

func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message, nil)
}

func Duplicate(message string, err error) *AppError {
	return New(ErrCodeDuplicate, message, err)
}

func DB(message string, err error) *AppError {
	return New(ErrCodeDB, message, err)
}

// As extracts the AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsBusiness reports whether err is a rule violation the operator can correct
// (answered with success=false), as opposed to an unexpected failure.
func IsBusiness(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code != ErrCodeDB
}
