package repository

import (
	"context"

	"voting-be/internal/domain"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetByID retrieves a user by ID, nil when absent or the id is malformed
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by username, nil when absent
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns a page of users ordered by creation time ascending
	List(ctx context.Context, page, size int) (*domain.PaginatedUsers, error)

	// Create inserts a new user and returns the stored record
	Create(ctx context.Context, username, passwordHash, firstPassword string) (*domain.User, error)
}

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	// DistinctNames returns the set of option names voted so far
	DistinctNames(ctx context.Context) ([]string, error)

	// GetByUser retrieves a user's vote, nil when absent or the id is malformed
	GetByUser(ctx context.Context, userID string) (*domain.Vote, error)

	// Summary aggregates current votes grouped by option name
	Summary(ctx context.Context) (*domain.VoteSummary, error)

	// Upsert records or changes a user's vote and returns the stable vote id
	Upsert(ctx context.Context, userID, name string) (string, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	User UserRepository
	Vote VoteRepository
}
