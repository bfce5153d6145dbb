package entity

import "github.com/shandysiswandi/payloadguard/internal/pkg/goerror"

// ValidationError reports that one field failed one rule.
//
// It is returned as a value, never panicked, and carries no transport
// concerns; ToGoError converts it for the outer layers.
type ValidationError struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// NewValidationError returns a ValidationError with message and code.
func NewValidationError(msg string, code Code) *ValidationError {
	return &ValidationError{Message: msg, Code: code}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// ToGoError converts e into a bad-request goerror that keeps Code as its reason.
func (e *ValidationError) ToGoError() error {
	return goerror.NewBadRequest(e.Message, e.Code.String())
}
