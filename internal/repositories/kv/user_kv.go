package kv

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

type UserKV struct {
	store store.Store
}

func NewUserKV(s store.Store) repositories.UserRepository {
	return &UserKV{store: s}
}

func (r *UserKV) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := readCollection(ctx, r.store, store.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserKV) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetByUsername matches exactly and case-sensitively.
func (r *UserKV) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserKV) Create(ctx context.Context, user *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return writeCollection(ctx, r.store, store.UsersKey, users)
}
