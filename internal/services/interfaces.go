package services

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type QuizSaveRequest = validator.QuizSaveRequest
type QuestionRequest = validator.QuestionRequest
type MockTestSaveRequest = validator.MockTestSaveRequest
type TimeSlotRequest = validator.TimeSlotRequest

// ResultFilters narrows a results listing; see repositories.ResultFilters.
type ResultFilters = repositories.ResultFilters

// ResultView is one submitted result with the referenced user and quiz
// resolved for display. Unresolvable references fall back to the Unknown*
// labels.
type ResultView struct {
	models.QuizResult
	StudentName string `json:"studentName"`
	QuizTitle   string `json:"quizTitle"`
}

// Fallback labels for results whose user or quiz reference no longer
// resolves.
const (
	UnknownStudentLabel = "Unknown Student"
	UnknownQuizLabel    = "Unknown Quiz"
)

// ===== SERVICE INTERFACES =====

// AuthService authenticates against the users collection and owns the
// persisted single-user session.
type AuthService interface {
	// Initialize loads the persisted session; it must complete before any
	// role-gated call.
	Initialize(ctx context.Context) error

	// Login matches username and password exactly and establishes the
	// redacted record as the session. Fails with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*models.SessionUser, error)

	// Register appends a new account and establishes it as the session.
	// Fails with ErrUsernameTaken on an exact username collision. An empty
	// role defaults to student.
	Register(ctx context.Context, req *RegisterRequest) (*models.SessionUser, error)

	// Logout clears the session.
	Logout(ctx context.Context) error

	// CurrentUser returns the session record, or nil when logged out.
	CurrentUser() *models.SessionUser
}

// QuizService is the admin authoring surface for quizzes.
type QuizService interface {
	Create(ctx context.Context, req *QuizSaveRequest) (*models.Quiz, error)
	Update(ctx context.Context, id string, req *QuizSaveRequest) (*models.Quiz, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	List(ctx context.Context) ([]models.Quiz, error)
}

// ScheduleService is the authoring and booking surface for mock tests.
type ScheduleService interface {
	Create(ctx context.Context, req *MockTestSaveRequest) (*models.MockTest, error)
	Update(ctx context.Context, id string, req *MockTestSaveRequest) (*models.MockTest, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.MockTest, error)
	List(ctx context.Context) ([]models.MockTest, error)

	// BookSlot marks the slot booked by userID. There is no unbooking
	// operation.
	BookSlot(ctx context.Context, testID, slotID, userID string) (*models.TimeSlot, error)
}

// AttemptService scores completed quiz attempts and records results.
type AttemptService interface {
	// Score grades answers positionally against the quiz's answer key and
	// returns a percentage in [0, 100].
	Score(quiz *models.Quiz, answers []int) float64

	// Submit scores and appends a new immutable result. Resubmitting the
	// same quiz appends another result.
	Submit(ctx context.Context, quizID, userID string, answers []int) (*models.QuizResult, error)
}

// ResultService is the admin review surface over submitted results.
type ResultService interface {
	// List returns filtered results sorted by submission time descending.
	List(ctx context.Context, filters ResultFilters) ([]ResultView, error)
}

// ReportService renders result listings into downloadable workbooks.
type ReportService interface {
	// ExportXLSX renders the filtered results to an XLSX workbook.
	ExportXLSX(ctx context.Context, filters ResultFilters) ([]byte, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager aggregates every service behind shared dependencies with a
// single lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Quizzes() QuizService
	Schedule() ScheduleService
	Attempts() AttemptService
	Results() ResultService
	Reports() ReportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
