package common

import (
	"errors"
	"fmt"
	"strings"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes
const (
	CodeFatalPrecondition = "FATAL_PRECONDITION"
	CodeConfig            = "CONFIG_ERROR"
	CodeRules             = "RULES_ERROR"
)

// Common application errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrValidation        = errors.New("validation failed")
	ErrFatalPrecondition = errors.New("fatal precondition")
)

// MissingColumnsError reports required registry columns absent from the header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("registry is missing required column(s): %s", strings.Join(e.Columns, ", "))
}

// Is lets errors.Is(err, ErrFatalPrecondition) hold for any missing-column error.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrFatalPrecondition
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewMissingColumnsError wraps the missing column names into a fatal precondition.
func NewMissingColumnsError(columns []string) *AppError {
	return NewAppError(CodeFatalPrecondition, "case registry rejected", &MissingColumnsError{Columns: columns})
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsFatal reports whether err must abort the whole run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatalPrecondition)
}
