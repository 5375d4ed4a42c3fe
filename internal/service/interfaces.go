package service

import (
	"context"

	"voting-be/internal/domain"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login authenticates a regular user and mints a USER token
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)

	// LoginAdmin authenticates the configured admin pair and mints an ADMIN token
	LoginAdmin(ctx context.Context, username, password string) (*domain.LoginResponse, error)

	// Verify validates a token string and returns its claims
	Verify(tokenString string) (*domain.AccessClaims, error)

	// HashPassword hashes a plaintext password at the configured cost
	HashPassword(password string) (string, error)
}

// VotingService defines the interface for voting operations
type VotingService interface {
	// GetCurrentVote returns the user's vote, nil if the user has not voted
	GetCurrentVote(ctx context.Context, userID string) (*domain.Vote, error)

	// GetOptions returns the distinct option names voted so far
	GetOptions(ctx context.Context) ([]string, error)

	// CastVote records or changes the user's vote and returns the vote id
	CastVote(ctx context.Context, userID, name string) (string, error)
}

// AdminService defines the interface for administrative operations
type AdminService interface {
	// ListUsers returns a page of users with credential fields stripped
	ListUsers(ctx context.Context, page, size int) (*domain.PaginatedPublicUsers, error)

	// CreateUser provisions a user with a generated one-time password
	CreateUser(ctx context.Context, username string) (*domain.PublicUser, error)

	// GetSummary returns the aggregate vote tally
	GetSummary(ctx context.Context) (*domain.VoteSummary, error)
}

// Services aggregates all service interfaces
type Services struct {
	Auth   AuthService
	Voting VotingService
	Admin  AdminService
}
