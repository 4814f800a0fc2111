package services

import (
	"errors"
	"fmt"

	"github.com/intelliquiz/quiz-service/internal/validator"
)

// Failure taxonomy surfaced to callers. All of these are local and
// recoverable; the caller decides whether to prompt again.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrMockTestNotFound   = errors.New("mock test not found")
	ErrSlotNotFound       = errors.New("time slot not found")

	// ErrSlotAlreadyBooked is the guard a hardened BookSlot should return on
	// double booking. The current BookSlot overwrites instead; see the note
	// there before wiring this in.
	ErrSlotAlreadyBooked = errors.New("time slot is already booked")
)

// BusinessRuleError reports a violated domain rule with structured context.
type BusinessRuleError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBusinessRuleError(code, message string, details map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationError wraps a single field failure in the shared validation
// error shape.
func NewValidationError(field, message string, value interface{}) validator.ValidationErrors {
	return validator.ValidationErrors{{
		Field:   field,
		Message: message,
		Value:   value,
		Rule:    "business_logic",
	}}
}

// IsValidationError reports whether err carries field-level validation
// failures.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
