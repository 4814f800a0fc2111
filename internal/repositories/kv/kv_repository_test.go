package kv

import (
	"context"
	"testing"
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

func newRepo(t *testing.T) repositories.Repository {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewKVRepository(RepositoryConfig{Store: s})
}

func TestUserRepository(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Empty collection reads as empty, not as an error.
	users, err := repo.Users().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll on empty store: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("GetAll = %d users, want 0", len(users))
	}

	alice := &models.User{ID: "u-1", Username: "alice", Password: "pw1", Role: models.RoleStudent}
	if err := repo.Users().Create(ctx, alice); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Users().GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != "u-1" {
		t.Errorf("GetByUsername ID = %q, want u-1", got.ID)
	}

	// Username lookup is case-sensitive.
	if _, err := repo.Users().GetByUsername(ctx, "Alice"); !repositories.IsNotFoundError(err) {
		t.Errorf("GetByUsername(Alice) = %v, want ErrNotFound", err)
	}

	if _, err := repo.Users().GetByID(ctx, "missing"); !repositories.IsNotFoundError(err) {
		t.Errorf("GetByID(missing) = %v, want ErrNotFound", err)
	}
}

func TestQuizRepositoryCRUD(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	quiz := &models.Quiz{
		ID:    "quiz-1",
		Title: "Go Basics",
		Questions: []models.Question{
			{ID: "q-1", Text: "Q?", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		},
	}
	if err := repo.Quizzes().Create(ctx, quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}

	quiz.Title = "Go Basics v2"
	quiz.Questions = append(quiz.Questions, models.Question{
		ID: "q-2", Text: "Another?", Options: []string{"c", "d"}, CorrectAnswerIndex: 1,
	})
	if err := repo.Quizzes().Update(ctx, quiz); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Quizzes().GetByID(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Go Basics v2" || len(got.Questions) != 2 {
		t.Errorf("after update = %+v", got)
	}

	if err := repo.Quizzes().Update(ctx, &models.Quiz{ID: "missing"}); !repositories.IsNotFoundError(err) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}

	if err := repo.Quizzes().Delete(ctx, "quiz-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Quizzes().GetByID(ctx, "quiz-1"); !repositories.IsNotFoundError(err) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Quizzes().Delete(ctx, "quiz-1"); !repositories.IsNotFoundError(err) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestMockTestRepositoryOwnsSlots(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	test := &models.MockTest{
		ID:              "mock-1",
		Title:           "Interview",
		DurationMinutes: 45,
		TimeSlots: []models.TimeSlot{
			{ID: "slot-1", StartTime: start, EndTime: start.Add(time.Hour)},
		},
	}
	if err := repo.MockTests().Create(ctx, test); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.MockTests().Delete(ctx, "mock-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Owned slots disappear with the parent; the collection is empty again.
	tests, err := repo.MockTests().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(tests) != 0 {
		t.Errorf("tests after delete = %d, want 0", len(tests))
	}
}

func TestResultRepositoryAppendOnly(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first := &models.QuizResult{ID: "r-1", UserID: "u-1", QuizID: "quiz-1", Score: 100, Answers: []int{0}, SubmittedAt: time.Now()}
	second := &models.QuizResult{ID: "r-2", UserID: "u-1", QuizID: "quiz-1", Score: 0, Answers: []int{-1}, SubmittedAt: time.Now()}

	if err := repo.Results().Append(ctx, first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Results().Append(ctx, second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	results, err := repo.Results().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].ID != "r-1" || results[1].ID != "r-2" {
		t.Errorf("append order not preserved: %+v", results)
	}
}

func TestSessionRepository(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Session().Get(ctx); !repositories.IsNotFoundError(err) {
		t.Errorf("Get with no session = %v, want ErrNotFound", err)
	}

	session := &models.SessionUser{ID: "u-1", Username: "alice", Role: models.RoleStudent}
	if err := repo.Session().Set(ctx, session); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := repo.Session().Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "u-1" || got.Username != "alice" {
		t.Errorf("Get = %+v, want %+v", got, session)
	}

	if err := repo.Session().Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := repo.Session().Get(ctx); !repositories.IsNotFoundError(err) {
		t.Errorf("Get after Clear = %v, want ErrNotFound", err)
	}
}
