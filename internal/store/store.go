package store

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPrefix namespaces every key so the application can share a storage
// medium with unrelated data without collisions.
const DefaultPrefix = "intelliQuiz_"

// Collection keys of the persisted state layout. Each maps to the
// JSON-serialized form of the corresponding collection; CurrentUserKey holds
// the single redacted session record.
const (
	UsersKey       = "users"
	QuizzesKey     = "quizzes"
	MockTestsKey   = "mockTests"
	QuizResultsKey = "quizResults"
	CurrentUserKey = "currentUser"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("store: key not found")

// DecodeError reports a value that is present but cannot be deserialized.
// Corrupt persisted state must surface to the caller rather than read as
// absent.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("store: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the key had no stored value.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// Store is a namespaced key/value wrapper over durable storage. Values are
// JSON-serialized text. Every Set fully replaces the value for a key; there
// are no transactions and no locking, so concurrent read-modify-write across
// processes is last-write-wins.
type Store interface {
	// Get deserializes the value under key into dest. Returns ErrKeyNotFound
	// when the key is absent and *DecodeError when the stored text is
	// malformed.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set serializes value and stores it under key, replacing any previous
	// value.
	Set(ctx context.Context, key string, value interface{}) error

	// Remove deletes the value under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error

	// Ping checks that the backing medium is reachable.
	Ping(ctx context.Context) error

	// Close releases the backing medium.
	Close() error
}
