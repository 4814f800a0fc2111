package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

type attemptService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAttemptService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AttemptService {
	return &attemptService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Score grades purely by position: answers[i] is correct iff it equals
// questions[i].CorrectAnswerIndex. Unanswered questions carry -1 and can
// never match. A quiz without questions scores zero.
func (s *attemptService) Score(quiz *models.Quiz, answers []int) float64 {
	total := len(quiz.Questions)
	if total == 0 {
		return 0
	}

	correct := 0
	for i := range quiz.Questions {
		if i < len(answers) && answers[i] == quiz.Questions[i].CorrectAnswerIndex {
			correct++
		}
	}

	return float64(correct) / float64(total) * 100
}

func (s *attemptService) Submit(ctx context.Context, quizID, userID string, answers []int) (*models.QuizResult, error) {
	quiz, err := s.repo.Quizzes().GetByID(ctx, quizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	if len(quiz.Questions) == 0 {
		return nil, NewBusinessRuleError("EMPTY_QUIZ",
			"quiz has no questions and cannot be submitted",
			map[string]interface{}{"quiz_id": quizID})
	}

	if len(answers) != len(quiz.Questions) {
		return nil, NewValidationError("answers",
			fmt.Sprintf("expected %d answers, got %d", len(quiz.Questions), len(answers)),
			len(answers))
	}

	result := &models.QuizResult{
		ID:          uuid.NewString(),
		UserID:      userID,
		QuizID:      quizID,
		Score:       s.Score(quiz, answers),
		Answers:     append([]int(nil), answers...),
		SubmittedAt: time.Now(),
	}

	// Always an append. Submitting the same quiz again records a second,
	// independent result.
	if err := s.repo.Results().Append(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	s.logger.Info("Quiz submitted",
		"quiz_id", quizID,
		"user_id", userID,
		"score", result.Score)

	return result, nil
}
