package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voting-be/internal/domain"
	"voting-be/pkg/redis"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewCacheService(client, zap.NewNop()), mr
}

func TestCacheService_GetSummary(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	winner := "A"
	fallbackCalls := 0
	fallback := func(ctx context.Context) (*domain.VoteSummary, error) {
		fallbackCalls++
		return &domain.VoteSummary{
			Winner: &winner,
			Count:  10,
			List: []domain.VoteSummaryEntry{
				{Name: "A", Count: 6, Percentage: 60},
				{Name: "B", Count: 4, Percentage: 40},
			},
		}, nil
	}

	summary, err := cache.GetSummary(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, 1, fallbackCalls)
	assert.Equal(t, 10, summary.Count)

	// Second read is served from the cache.
	summary, err = cache.GetSummary(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, 1, fallbackCalls)
	require.NotNil(t, summary.Winner)
	assert.Equal(t, "A", *summary.Winner)
	assert.Len(t, summary.List, 2)

	// Invalidation forces the next read back to the store.
	cache.Invalidate(ctx)
	_, err = cache.GetSummary(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, 2, fallbackCalls)
}

func TestCacheService_GetSummary_CorruptedEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set(redis.KeySummary, "{not json"))

	fallbackCalls := 0
	fallback := func(ctx context.Context) (*domain.VoteSummary, error) {
		fallbackCalls++
		return &domain.VoteSummary{Count: 0, List: []domain.VoteSummaryEntry{}}, nil
	}

	summary, err := cache.GetSummary(context.Background(), fallback)
	require.NoError(t, err)
	assert.Equal(t, 1, fallbackCalls)
	assert.Equal(t, 0, summary.Count)
}

func TestCacheService_GetOptions(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	fallbackCalls := 0
	fallback := func(ctx context.Context) ([]string, error) {
		fallbackCalls++
		return []string{"Alpha", "Beta"}, nil
	}

	options, err := cache.GetOptions(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, options)
	assert.Equal(t, 1, fallbackCalls)

	options, err = cache.GetOptions(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, options)
	assert.Equal(t, 1, fallbackCalls)

	cache.Invalidate(ctx)
	_, err = cache.GetOptions(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, 2, fallbackCalls)
}

func TestVotingService_CastVote_InvalidatesCache(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := newFakeVoteRepo()
	s := NewVotingService(repo, cache, zap.NewNop())
	ctx := context.Background()

	_, err := s.CastVote(ctx, "user-1", "Alpha")
	require.NoError(t, err)

	_, err = s.GetOptions(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists(redis.KeyOptions))

	_, err = s.CastVote(ctx, "user-2", "Beta")
	require.NoError(t, err)
	assert.False(t, mr.Exists(redis.KeyOptions))

	options, err := s.GetOptions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, options)
}
