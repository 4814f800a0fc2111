// Package kv implements the domain repositories over the namespaced
// key/value store. Every collection lives under a single key as one JSON
// document; mutations load the collection, transform it in memory and write
// it back whole.
package kv

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

// KVRepository implements the main Repository interface
type KVRepository struct {
	store store.Store

	// Repository instances
	users     repositories.UserRepository
	quizzes   repositories.QuizRepository
	mockTests repositories.MockTestRepository
	results   repositories.QuizResultRepository
	session   repositories.SessionRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	Store store.Store
}

// NewKVRepository creates a repository manager with all sub-repositories
// bound to the same store.
func NewKVRepository(config RepositoryConfig) repositories.Repository {
	repo := &KVRepository{
		store: config.Store,
	}

	repo.users = NewUserKV(config.Store)
	repo.quizzes = NewQuizKV(config.Store)
	repo.mockTests = NewMockTestKV(config.Store)
	repo.results = NewQuizResultKV(config.Store)
	repo.session = NewSessionKV(config.Store)

	return repo
}

func (r *KVRepository) Users() repositories.UserRepository { return r.users }

func (r *KVRepository) Quizzes() repositories.QuizRepository { return r.quizzes }

func (r *KVRepository) MockTests() repositories.MockTestRepository { return r.mockTests }

func (r *KVRepository) Results() repositories.QuizResultRepository { return r.results }

func (r *KVRepository) Session() repositories.SessionRepository { return r.session }

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *KVRepository) Close() error {
	return r.store.Close()
}
