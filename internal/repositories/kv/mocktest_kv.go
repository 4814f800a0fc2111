package kv

import (
	"context"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/store"
)

type MockTestKV struct {
	store store.Store
}

func NewMockTestKV(s store.Store) repositories.MockTestRepository {
	return &MockTestKV{store: s}
}

func (r *MockTestKV) GetAll(ctx context.Context) ([]models.MockTest, error) {
	var tests []models.MockTest
	if err := readCollection(ctx, r.store, store.MockTestsKey, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *MockTestKV) GetByID(ctx context.Context, id string) (*models.MockTest, error) {
	tests, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tests {
		if tests[i].ID == id {
			return &tests[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *MockTestKV) Create(ctx context.Context, test *models.MockTest) error {
	tests, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	tests = append(tests, *test)
	return writeCollection(ctx, r.store, store.MockTestsKey, tests)
}

// Update replaces the stored test matching test.ID wholesale, owned slots
// included. Booking state is whatever the caller put in the slot list.
func (r *MockTestKV) Update(ctx context.Context, test *models.MockTest) error {
	tests, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range tests {
		if tests[i].ID == test.ID {
			tests[i] = *test
			return writeCollection(ctx, r.store, store.MockTestsKey, tests)
		}
	}
	return repositories.ErrNotFound
}

// Delete removes the test and, implicitly, every slot it owns.
func (r *MockTestKV) Delete(ctx context.Context, id string) error {
	tests, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range tests {
		if tests[i].ID == id {
			tests = append(tests[:i], tests[i+1:]...)
			return writeCollection(ctx, r.store, store.MockTestsKey, tests)
		}
	}
	return repositories.ErrNotFound
}
