package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/intelliquiz/quiz-service/internal/models"
)

// Validator handles request and business rule validation
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single failed rule on one field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// New creates a validator with the custom rules registered
func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerBusinessRules()

	return v
}

// Validate validates a struct against its tags
func (v *Validator) Validate(s interface{}) ValidationErrors {
	var errors ValidationErrors

	err := v.validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errors = append(errors, ValidationError{
				Field:   err.Field(),
				Message: v.getErrorMessage(err),
				Value:   err.Value(),
				Rule:    err.Tag(),
			})
		}
	}

	return errors
}

// ValidateRegister validates account registration input
func (v *Validator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateQuizSave validates quiz create/update input: non-empty title,
// at least one question, every question fully filled out with the correct
// answer pointing at one of its own options.
func (v *Validator) ValidateQuizSave(req *QuizSaveRequest) ValidationErrors {
	errors := v.Validate(req)

	for i, q := range req.Questions {
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("questions[%d].correctAnswerIndex", i),
				Message: "must select a correct answer among the question's options",
				Value:   q.CorrectAnswerIndex,
				Rule:    "answer_index_range",
			})
		}
	}

	return errors
}

// ValidateMockTestSave validates mock-test create/update input: non-empty
// title, positive duration, at least one slot, every slot starting before it
// ends.
func (v *Validator) ValidateMockTestSave(req *MockTestSaveRequest) ValidationErrors {
	errors := v.Validate(req)

	for i, slot := range req.TimeSlots {
		if !slot.StartTime.IsZero() && !slot.EndTime.IsZero() && !slot.StartTime.Before(slot.EndTime) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("timeSlots[%d]", i),
				Message: "start time must be before end time",
				Value:   slot.StartTime,
				Rule:    "slot_time_range",
			})
		}
	}

	return errors
}

// registerBusinessRules registers custom rule validators
func (v *Validator) registerBusinessRules() {
	// Titles, question texts and options must contain visible characters,
	// not just whitespace.
	v.validate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
}

func (v *Validator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "nonblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must have at least %s items or characters", err.Param())
	case "max":
		return fmt.Sprintf("must have at most %s items or characters", err.Param())
	case "user_role":
		return "must be student or admin"
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
