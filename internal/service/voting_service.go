package service

import (
	"context"

	"go.uber.org/zap"

	"voting-be/internal/domain"
	"voting-be/internal/repository"
)

// votingService orchestrates vote casting and option listing. The
// one-vote-per-user invariant lives entirely in the store's upsert;
// this layer adds caching and logging only.
type votingService struct {
	votes  repository.VoteRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewVotingService creates a new voting service. cache may be nil when
// Redis is not configured; all reads then go straight to the store.
func NewVotingService(votes repository.VoteRepository, cache *CacheService, logger *zap.Logger) VotingService {
	return &votingService{
		votes:  votes,
		cache:  cache,
		logger: logger,
	}
}

// GetCurrentVote returns the user's vote, nil if the user has not voted
func (s *votingService) GetCurrentVote(ctx context.Context, userID string) (*domain.Vote, error) {
	return s.votes.GetByUser(ctx, userID)
}

// GetOptions returns the distinct option names voted so far
func (s *votingService) GetOptions(ctx context.Context) ([]string, error) {
	if s.cache == nil {
		return s.votes.DistinctNames(ctx)
	}
	return s.cache.GetOptions(ctx, s.votes.DistinctNames)
}

// CastVote records or changes the user's vote. Casting again replaces
// the previous option; the returned id is stable across re-votes.
func (s *votingService) CastVote(ctx context.Context, userID, name string) (string, error) {
	id, err := s.votes.Upsert(ctx, userID, name)
	if err != nil {
		return "", err
	}

	s.logger.Info("vote_cast",
		zap.String("user_id", userID),
		zap.String("vote_id", id))

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	return id, nil
}
