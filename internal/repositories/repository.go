package repositories

import "context"

// Repository aggregates the typed accessors for every persisted collection.
// All implementations share one mutation primitive: read the whole
// collection, transform it in memory, write the whole collection back.
type Repository interface {
	// Account domain
	Users() UserRepository

	// Quiz domain
	Quizzes() QuizRepository

	// Scheduling domain
	MockTests() MockTestRepository

	// Attempt domain
	Results() QuizResultRepository

	// Current-user session record
	Session() SessionRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}
