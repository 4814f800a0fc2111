package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
)

type resultService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewResultService(repo repositories.Repository, logger *slog.Logger) ResultService {
	return &resultService{
		repo:   repo,
		logger: logger,
	}
}

// List resolves usernames and quiz titles, applies the filters and sorts by
// submission time descending. The name filter is a case-insensitive
// substring match against the resolved username; a result whose user no
// longer exists keeps its fallback label but never matches a non-empty name
// filter. The date range is inclusive on both ends, with the end bound
// extended to the last instant of its day.
func (s *resultService) List(ctx context.Context, filters ResultFilters) ([]ResultView, error) {
	results, err := s.repo.Results().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	users, err := s.repo.Users().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	quizzes, err := s.repo.Quizzes().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quizzes: %w", err)
	}

	usernames := make(map[string]string, len(users))
	for i := range users {
		usernames[users[i].ID] = users[i].Username
	}
	titles := make(map[string]string, len(quizzes))
	for i := range quizzes {
		titles[quizzes[i].ID] = quizzes[i].Title
	}

	nameNeedle := strings.ToLower(strings.TrimSpace(filters.StudentName))

	var views []ResultView
	for i := range results {
		result := results[i]

		username, userKnown := usernames[result.UserID]
		if nameNeedle != "" {
			if !userKnown || !strings.Contains(strings.ToLower(username), nameNeedle) {
				continue
			}
		}

		if filters.QuizID != "" && result.QuizID != filters.QuizID {
			continue
		}

		if !matchesDateRange(result.SubmittedAt, filters.DateFrom, filters.DateTo) {
			continue
		}

		views = append(views, newResultView(result, usernames, titles))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SubmittedAt.After(views[j].SubmittedAt)
	})

	return views, nil
}

// matchesDateRange treats the upper bound as end-of-day inclusive: the bound
// is advanced one day and compared strictly-less-than.
func matchesDateRange(submittedAt time.Time, from, to *time.Time) bool {
	if from != nil && submittedAt.Before(*from) {
		return false
	}
	if to != nil && !submittedAt.Before(to.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func newResultView(result models.QuizResult, usernames, titles map[string]string) ResultView {
	view := ResultView{
		QuizResult:  result,
		StudentName: UnknownStudentLabel,
		QuizTitle:   UnknownQuizLabel,
	}
	if name, ok := usernames[result.UserID]; ok {
		view.StudentName = name
	}
	if title, ok := titles[result.QuizID]; ok {
		view.QuizTitle = title
	}
	return view
}
