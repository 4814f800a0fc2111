package kv

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

type QuizResultKV struct {
	store store.Store
}

func NewQuizResultKV(s store.Store) repositories.QuizResultRepository {
	return &QuizResultKV{store: s}
}

func (r *QuizResultKV) GetAll(ctx context.Context) ([]models.QuizResult, error) {
	var results []models.QuizResult
	if err := readCollection(ctx, r.store, store.QuizResultsKey, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *QuizResultKV) Append(ctx context.Context, result *models.QuizResult) error {
	results, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	results = append(results, *result)
	return writeCollection(ctx, r.store, store.QuizResultsKey, results)
}
