// Package seed holds the fixed first-run dataset and the one-time bootstrap
// that loads it when the store has never been initialized.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/store"
)

// Data is the complete initial dataset: three accounts, two quizzes, one
// mock test with three slots (the last pre-booked by the first seeded user)
// and an empty results collection.
type Data struct {
	Users       []models.User
	Quizzes     []models.Quiz
	MockTests   []models.MockTest
	QuizResults []models.QuizResult
}

// New builds the seed dataset. Slot times are anchored on now so a fresh
// install always offers upcoming slots.
func New(now time.Time) Data {
	bookedBy := "user-1"

	return Data{
		Users: []models.User{
			{ID: "user-1", Username: "student", Password: "student123", Role: models.RoleStudent},
			{ID: "user-2", Username: "admin", Password: "admin123", Role: models.RoleAdmin},
			{ID: "user-3", Username: "john.doe", Password: "student123", Role: models.RoleStudent},
		},
		Quizzes: []models.Quiz{
			{
				ID:    "quiz-1",
				Title: "React Fundamentals",
				Questions: []models.Question{
					{
						ID:                 "q-1-1",
						Text:               "What is JSX?",
						Options:            []string{"A JavaScript syntax extension", "A templating engine", "A CSS preprocessor", "A database query language"},
						CorrectAnswerIndex: 0,
					},
					{
						ID:                 "q-1-2",
						Text:               "Which hook is used to manage state in a functional component?",
						Options:            []string{"useEffect", "useState", "useContext", "useReducer"},
						CorrectAnswerIndex: 1,
					},
					{
						ID:                 "q-1-3",
						Text:               "What does `ReactDOM.createRoot()` do?",
						Options:            []string{"Creates a virtual DOM", "Renders a component to the browser DOM", "Creates an entry point for a React application", "Compiles JSX to JavaScript"},
						CorrectAnswerIndex: 2,
					},
				},
			},
			{
				ID:    "quiz-2",
				Title: "Advanced TypeScript",
				Questions: []models.Question{
					{
						ID:                 "q-2-1",
						Text:               "What is a generic in TypeScript?",
						Options:            []string{"A type of function", "A way to create reusable components", "A feature for defining interfaces", "A tool for type-checking"},
						CorrectAnswerIndex: 1,
					},
					{
						ID:                 "q-2-2",
						Text:               "What is the purpose of the `never` type?",
						Options:            []string{"To represent the type of values that never occur", "To indicate a function that always throws an exception", "To specify a variable that is always null", "Both A and B"},
						CorrectAnswerIndex: 3,
					},
				},
			},
		},
		MockTests: []models.MockTest{
			{
				ID:              "mock-1",
				Title:           "Frontend Developer Interview Simulation",
				DurationMinutes: 60,
				TimeSlots: []models.TimeSlot{
					{
						ID:        "slot-1-1",
						StartTime: now.Add(24 * time.Hour),
						EndTime:   now.Add(25 * time.Hour),
					},
					{
						ID:        "slot-1-2",
						StartTime: now.Add(48 * time.Hour),
						EndTime:   now.Add(49 * time.Hour),
					},
					{
						ID:        "slot-1-3",
						StartTime: now.Add(72 * time.Hour),
						EndTime:   now.Add(73 * time.Hour),
						IsBooked:  true,
						BookedBy:  &bookedBy,
					},
				},
			},
		},
		QuizResults: []models.QuizResult{},
	}
}

// Initialize populates every collection from the seed dataset when the users
// collection is absent. The users key alone guards the bootstrap; this is a
// first-run check, not a schema migration.
func Initialize(ctx context.Context, s store.Store) (bool, error) {
	var users []models.User
	err := s.Get(ctx, store.UsersKey, &users)
	if err == nil {
		return false, nil
	}
	if !store.IsNotFound(err) {
		return false, fmt.Errorf("seed: check users collection: %w", err)
	}

	data := New(time.Now())
	if err := s.Set(ctx, store.UsersKey, data.Users); err != nil {
		return false, fmt.Errorf("seed: write users: %w", err)
	}
	if err := s.Set(ctx, store.QuizzesKey, data.Quizzes); err != nil {
		return false, fmt.Errorf("seed: write quizzes: %w", err)
	}
	if err := s.Set(ctx, store.MockTestsKey, data.MockTests); err != nil {
		return false, fmt.Errorf("seed: write mock tests: %w", err)
	}
	if err := s.Set(ctx, store.QuizResultsKey, data.QuizResults); err != nil {
		return false, fmt.Errorf("seed: write quiz results: %w", err)
	}
	return true, nil
}
