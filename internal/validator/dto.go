package validator

import (
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
)

// RegisterRequest represents the request structure for registering accounts
type RegisterRequest struct {
	Username string          `json:"username" validate:"required,min=1,max=100"`
	Password string          `json:"password" validate:"required,min=1,max=200"`
	Role     models.UserRole `json:"role" validate:"omitempty,user_role"`
}

// QuestionRequest represents one question inside a quiz save. ID is empty for
// newly authored questions; edits carry the existing ID so question identity
// survives reordering.
type QuestionRequest struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text" validate:"required,nonblank"`
	Options            []string `json:"options" validate:"min=2,dive,nonblank"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// QuizSaveRequest represents the request structure for creating or updating
// quizzes. Updates replace the title and question list wholesale.
type QuizSaveRequest struct {
	Title     string            `json:"title" validate:"required,nonblank,max=200"`
	Questions []QuestionRequest `json:"questions" validate:"min=1"`
}

// TimeSlotRequest represents one bookable interval inside a mock-test save.
type TimeSlotRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
}

// MockTestSaveRequest represents the request structure for creating or
// updating mock tests. Updates replace the slot list wholesale and rebuild
// every slot unbooked.
type MockTestSaveRequest struct {
	Title           string            `json:"title" validate:"required,nonblank,max=200"`
	DurationMinutes int               `json:"durationMinutes" validate:"required,min=1"`
	TimeSlots       []TimeSlotRequest `json:"timeSlots" validate:"min=1"`
}
