package kv

import (
	"context"
	"fmt"

	"github.com/intelliquiz/quiz-service/internal/store"
)

// readCollection loads a whole collection into dest. A key that was never
// written reads as the empty collection; malformed stored text still
// surfaces as a decode error.
func readCollection(ctx context.Context, s store.Store, key string, dest interface{}) error {
	err := s.Get(ctx, key, dest)
	if err == nil || store.IsNotFound(err) {
		return nil
	}
	return fmt.Errorf("failed to read collection %q: %w", key, err)
}

// writeCollection replaces a whole collection.
func writeCollection(ctx context.Context, s store.Store, key string, value interface{}) error {
	if err := s.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}
