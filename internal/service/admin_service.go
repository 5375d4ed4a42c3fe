package service

import (
	"context"
	"crypto/rand"
	"math/big"

	"go.uber.org/zap"

	"voting-be/internal/domain"
	"voting-be/internal/repository"
	"voting-be/pkg/errors"
)

const (
	generatedPasswordLength = 12
	passwordAlphabet        = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// adminService orchestrates user provisioning and exposes the tally
type adminService struct {
	users  repository.UserRepository
	votes  repository.VoteRepository
	auth   AuthService
	cache  *CacheService
	logger *zap.Logger
}

// NewAdminService creates a new admin service. cache may be nil when
// Redis is not configured.
func NewAdminService(users repository.UserRepository, votes repository.VoteRepository, auth AuthService, cache *CacheService, logger *zap.Logger) AdminService {
	return &adminService{
		users:  users,
		votes:  votes,
		auth:   auth,
		cache:  cache,
		logger: logger,
	}
}

// ListUsers returns a page of users. Credential fields are stripped
// here so no password material crosses the service boundary.
func (s *adminService) ListUsers(ctx context.Context, page, size int) (*domain.PaginatedPublicUsers, error) {
	users, err := s.users.List(ctx, page, size)
	if err != nil {
		return nil, err
	}

	list := make([]domain.PublicUser, 0, len(users.List))
	for i := range users.List {
		list = append(list, users.List[i].Public())
	}

	return &domain.PaginatedPublicUsers{
		List:       list,
		Pagination: users.Pagination,
	}, nil
}

// CreateUser provisions a user with a generated one-time password. The
// plaintext is returned (and retained in the store) so it can be
// communicated to the new user once; this is a deliberate tradeoff of
// the provisioning flow, not an oversight.
func (s *adminService) CreateUser(ctx context.Context, username string) (*domain.PublicUser, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewInvalidArgumentError("username already exists")
	}

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate password", err)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// The pre-check above is optimistic: a concurrent create with the
	// same username loses at the store's unique constraint and surfaces
	// as a conflict.
	user, err := s.users.Create(ctx, username, hash, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user_created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username))

	public := user.Public()
	public.FirstPassword = user.FirstPassword
	return &public, nil
}

// GetSummary returns the aggregate vote tally
func (s *adminService) GetSummary(ctx context.Context) (*domain.VoteSummary, error) {
	if s.cache == nil {
		return s.votes.Summary(ctx)
	}
	return s.cache.GetSummary(ctx, s.votes.Summary)
}

// generatePassword returns a random alphanumeric string of length n
func generatePassword(n int) (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
