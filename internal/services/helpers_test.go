package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/repositories/kv"
	"github.com/intelliquiz/quiz-service/internal/store"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRepo(t *testing.T) (store.Store, repositories.Repository) {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s, kv.NewKVRepository(kv.RepositoryConfig{Store: s})
}

// newTestManager returns an initialized manager over a fresh store, so the
// seed dataset is loaded and the session restored.
func newTestManager(t *testing.T) (ServiceManager, repositories.Repository) {
	t.Helper()
	s, repo := newTestRepo(t)
	m := NewServiceManager(s, repo, testLogger(), validator.New())
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return m, repo
}
