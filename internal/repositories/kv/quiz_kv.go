package kv

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

type QuizKV struct {
	store store.Store
}

func NewQuizKV(s store.Store) repositories.QuizRepository {
	return &QuizKV{store: s}
}

func (r *QuizKV) GetAll(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := readCollection(ctx, r.store, store.QuizzesKey, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *QuizKV) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	quizzes, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		if quizzes[i].ID == id {
			return &quizzes[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *QuizKV) Create(ctx context.Context, quiz *models.Quiz) error {
	quizzes, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	quizzes = append(quizzes, *quiz)
	return writeCollection(ctx, r.store, store.QuizzesKey, quizzes)
}

// Update replaces the stored quiz matching quiz.ID wholesale, owned
// questions included.
func (r *QuizKV) Update(ctx context.Context, quiz *models.Quiz) error {
	quizzes, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range quizzes {
		if quizzes[i].ID == quiz.ID {
			quizzes[i] = *quiz
			return writeCollection(ctx, r.store, store.QuizzesKey, quizzes)
		}
	}
	return repositories.ErrNotFound
}

// Delete removes the quiz and, implicitly, every question it owns.
func (r *QuizKV) Delete(ctx context.Context, id string) error {
	quizzes, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range quizzes {
		if quizzes[i].ID == id {
			quizzes = append(quizzes[:i], quizzes[i+1:]...)
			return writeCollection(ctx, r.store, store.QuizzesKey, quizzes)
		}
	}
	return repositories.ErrNotFound
}
