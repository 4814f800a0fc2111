package kv

import (
	"context"
	"fmt"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

type SessionKV struct {
	store store.Store
}

func NewSessionKV(s store.Store) repositories.SessionRepository {
	return &SessionKV{store: s}
}

// Get returns the persisted session record, or ErrNotFound when nobody is
// logged in.
func (r *SessionKV) Get(ctx context.Context) (*models.SessionUser, error) {
	var user models.SessionUser
	err := r.store.Get(ctx, store.CurrentUserKey, &user)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &user, nil
}

func (r *SessionKV) Set(ctx context.Context, user *models.SessionUser) error {
	if err := r.store.Set(ctx, store.CurrentUserKey, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (r *SessionKV) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, store.CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
