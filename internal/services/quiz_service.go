package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

type quizService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuizService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) QuizService {
	return &quizService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *quizService) Create(ctx context.Context, req *QuizSaveRequest) (*models.Quiz, error) {
	if errs := s.validator.ValidateQuizSave(req); len(errs) > 0 {
		return nil, errs
	}

	quiz := &models.Quiz{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Questions: buildQuestions(req.Questions, nil),
	}

	if err := s.repo.Quizzes().Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	s.logger.Info("Quiz created", "quiz_id", quiz.ID, "questions", len(quiz.Questions))
	return quiz, nil
}

// Update replaces the title and question list wholesale. Question identity
// is stable: a submitted question carrying the ID of a question the quiz
// already owns keeps that ID regardless of position, everything else gets a
// fresh one.
func (s *quizService) Update(ctx context.Context, id string, req *QuizSaveRequest) (*models.Quiz, error) {
	if errs := s.validator.ValidateQuizSave(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.repo.Quizzes().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	quiz := &models.Quiz{
		ID:        id,
		Title:     req.Title,
		Questions: buildQuestions(req.Questions, existing),
	}

	if err := s.repo.Quizzes().Update(ctx, quiz); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	s.logger.Info("Quiz updated", "quiz_id", id, "questions", len(quiz.Questions))
	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Quizzes().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	s.logger.Info("Quiz deleted", "quiz_id", id)
	return nil
}

func (s *quizService) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.repo.Quizzes().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return quiz, nil
}

func (s *quizService) List(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := s.repo.Quizzes().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// buildQuestions materializes request questions into owned records. With a
// non-nil existing quiz, incoming IDs that match a question it owns are
// preserved; unknown or empty IDs are replaced with fresh ones.
func buildQuestions(reqs []QuestionRequest, existing *models.Quiz) []models.Question {
	questions := make([]models.Question, len(reqs))
	for i, q := range reqs {
		id := ""
		if existing != nil && q.ID != "" && existing.QuestionByID(q.ID) != nil {
			id = q.ID
		}
		if id == "" {
			id = uuid.NewString()
		}
		questions[i] = models.Question{
			ID:                 id,
			Text:               q.Text,
			Options:            append([]string(nil), q.Options...),
			CorrectAnswerIndex: q.CorrectAnswerIndex,
		}
	}
	return questions
}
