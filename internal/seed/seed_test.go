package seed

import (
	"context"
	"testing"
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/store"
)

func newStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestNewDataset(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	data := New(now)

	if len(data.Users) != 3 {
		t.Fatalf("users = %d, want 3", len(data.Users))
	}
	if data.Users[0].Username != "student" || data.Users[0].Role != models.RoleStudent {
		t.Errorf("first user = %+v, want student account", data.Users[0])
	}
	if data.Users[1].Username != "admin" || data.Users[1].Role != models.RoleAdmin {
		t.Errorf("second user = %+v, want admin account", data.Users[1])
	}
	if data.Users[2].Role != models.RoleStudent {
		t.Errorf("third user role = %q, want student", data.Users[2].Role)
	}

	if len(data.Quizzes) != 2 {
		t.Fatalf("quizzes = %d, want 2", len(data.Quizzes))
	}
	if got := len(data.Quizzes[0].Questions); got != 3 {
		t.Errorf("first quiz questions = %d, want 3", got)
	}
	if got := len(data.Quizzes[1].Questions); got != 2 {
		t.Errorf("second quiz questions = %d, want 2", got)
	}
	for _, quiz := range data.Quizzes {
		for _, q := range quiz.Questions {
			if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
				t.Errorf("question %s: correct index %d out of range", q.ID, q.CorrectAnswerIndex)
			}
		}
	}

	if len(data.MockTests) != 1 {
		t.Fatalf("mock tests = %d, want 1", len(data.MockTests))
	}
	test := data.MockTests[0]
	if test.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", test.DurationMinutes)
	}
	if len(test.TimeSlots) != 3 {
		t.Fatalf("slots = %d, want 3", len(test.TimeSlots))
	}
	for i, slot := range test.TimeSlots {
		if !slot.StartTime.Before(slot.EndTime) {
			t.Errorf("slot %d: start %v not before end %v", i, slot.StartTime, slot.EndTime)
		}
	}
	if test.TimeSlots[0].IsBooked || test.TimeSlots[1].IsBooked {
		t.Errorf("first two slots must be open")
	}
	last := test.TimeSlots[2]
	if !last.IsBooked || last.BookedBy == nil || *last.BookedBy != data.Users[0].ID {
		t.Errorf("third slot = %+v, want pre-booked by %s", last, data.Users[0].ID)
	}

	if len(data.QuizResults) != 0 {
		t.Errorf("results = %d, want empty collection", len(data.QuizResults))
	}
}

func TestInitializeFirstRun(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	seeded, err := Initialize(ctx, s)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !seeded {
		t.Fatal("first Initialize must seed")
	}

	var users []models.User
	if err := s.Get(ctx, store.UsersKey, &users); err != nil {
		t.Fatalf("Get users: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("seeded users = %d, want 3", len(users))
	}

	var results []models.QuizResult
	if err := s.Get(ctx, store.QuizResultsKey, &results); err != nil {
		t.Fatalf("Get results: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("seeded results = %d, want 0", len(results))
	}
}

func TestInitializeGuardedByUsersKey(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if _, err := Initialize(ctx, s); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// Mutate state, then re-run: nothing may be overwritten.
	extra := models.User{ID: "user-x", Username: "extra", Password: "pw", Role: models.RoleStudent}
	var users []models.User
	if err := s.Get(ctx, store.UsersKey, &users); err != nil {
		t.Fatalf("Get users: %v", err)
	}
	users = append(users, extra)
	if err := s.Set(ctx, store.UsersKey, users); err != nil {
		t.Fatalf("Set users: %v", err)
	}

	seeded, err := Initialize(ctx, s)
	if err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if seeded {
		t.Fatal("Initialize must not reseed when users collection exists")
	}

	if err := s.Get(ctx, store.UsersKey, &users); err != nil {
		t.Fatalf("Get users: %v", err)
	}
	if len(users) != 4 {
		t.Errorf("users after guarded rerun = %d, want 4", len(users))
	}
}
