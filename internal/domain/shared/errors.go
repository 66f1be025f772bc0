package shared

import "strings"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// ValidationError carries one or more human-readable validation messages.
// Record-level failures in the import path surface as this type so callers
// can attach the messages to a log entry instead of aborting.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError creates a validation error from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
