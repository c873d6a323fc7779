package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInternal ErrorCode = "INTERNAL_ERROR"

	// Generation and reconstruction errors
	ErrInvalidLength   ErrorCode = "INVALID_LENGTH"
	ErrInvalidOptions  ErrorCode = "INVALID_OPTIONS"
	ErrInvalidTerms    ErrorCode = "INVALID_TERMS"
	ErrInvalidQuestion ErrorCode = "INVALID_QUESTION"
	ErrDataIncomplete  ErrorCode = "DATA_INCOMPLETE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// Helper functions for common errors

func NewInvalidLengthError(length int) *DomainError {
	return NewError(ErrInvalidLength, fmt.Sprintf("Invalid quiz length: %d", length), nil)
}

func NewInvalidOptionsError(nOptions int) *DomainError {
	return NewError(ErrInvalidOptions, fmt.Sprintf("Invalid number of options: %d", nOptions), nil)
}

func NewInvalidTermsError(message string) *DomainError {
	return NewError(ErrInvalidTerms, message, nil)
}

func NewInvalidQuestionError(questionType string) *DomainError {
	return NewError(ErrInvalidQuestion, fmt.Sprintf("Invalid question type: %q", questionType), nil)
}

func NewDataIncompleteError(field string) *DomainError {
	return NewError(ErrDataIncomplete, fmt.Sprintf("Question data is missing required field: %q", field), nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
