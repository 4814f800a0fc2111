package repositories

import (
	"context"
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// ResultFilters narrows a results listing. Zero values mean "no filter".
// DateTo is end-of-day inclusive: a result submitted any time during the
// DateTo day matches.
type ResultFilters struct {
	StudentName string     `json:"student_name"`
	QuizID      string     `json:"quiz_id"`
	DateFrom    *time.Time `json:"date_from"`
	DateTo      *time.Time `json:"date_to"`
}

// ===== REPOSITORY INTERFACES =====

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type QuizRepository interface {
	GetAll(ctx context.Context) ([]models.Quiz, error)
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
}

type MockTestRepository interface {
	GetAll(ctx context.Context) ([]models.MockTest, error)
	GetByID(ctx context.Context, id string) (*models.MockTest, error)
	Create(ctx context.Context, test *models.MockTest) error
	Update(ctx context.Context, test *models.MockTest) error
	Delete(ctx context.Context, id string) error
}

type QuizResultRepository interface {
	GetAll(ctx context.Context) ([]models.QuizResult, error)
	// Append adds a new immutable result. Results are never updated or
	// deleted through normal flow.
	Append(ctx context.Context, result *models.QuizResult) error
}

// SessionRepository persists the single redacted current-user record that
// survives restarts. Absence means logged out.
type SessionRepository interface {
	Get(ctx context.Context) (*models.SessionUser, error)
	Set(ctx context.Context, user *models.SessionUser) error
	Clear(ctx context.Context) error
}
