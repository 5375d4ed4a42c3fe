package service

import (
	"context"
	"fmt"
	"time"

	"voting-be/internal/domain"
	"voting-be/pkg/errors"
)

// fakeVoteRepo is an in-memory VoteRepository honoring the store
// contract: at most one vote per user, stable id across re-votes,
// created_at set once, updated_at on every write.
type fakeVoteRepo struct {
	votes         map[string]*domain.Vote // keyed by user id
	nextID        int
	upsertCalls   int
	distinctCalls int
	summaryCalls  int
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*domain.Vote)}
}

func (f *fakeVoteRepo) DistinctNames(ctx context.Context) ([]string, error) {
	f.distinctCalls++
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, v := range f.votes {
		if !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	}
	return names, nil
}

func (f *fakeVoteRepo) GetByUser(ctx context.Context, userID string) (*domain.Vote, error) {
	v, ok := f.votes[userID]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVoteRepo) Summary(ctx context.Context) (*domain.VoteSummary, error) {
	f.summaryCalls++
	counts := make(map[string]int)
	total := 0
	for _, v := range f.votes {
		counts[v.Name]++
		total++
	}
	summary := &domain.VoteSummary{Count: total, List: make([]domain.VoteSummaryEntry, 0)}
	for name, count := range counts {
		summary.List = append(summary.List, domain.VoteSummaryEntry{
			Name:       name,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	if len(summary.List) > 0 {
		summary.Winner = &summary.List[0].Name
	}
	return summary, nil
}

func (f *fakeVoteRepo) Upsert(ctx context.Context, userID, name string) (string, error) {
	f.upsertCalls++
	now := time.Now()
	if v, ok := f.votes[userID]; ok {
		v.Name = name
		v.UpdatedAt = now
		return v.ID, nil
	}
	f.nextID++
	vote := &domain.Vote{
		ID:        fmt.Sprintf("vote-%d", f.nextID),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.votes[userID] = vote
	return vote.ID, nil
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users       []*domain.User
	createCalls int
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, page, size int) (*domain.PaginatedUsers, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	list := make([]domain.User, 0)
	for _, u := range f.users {
		list = append(list, *u)
	}
	return &domain.PaginatedUsers{
		List: list,
		Pagination: domain.Pagination{
			Page:     page,
			Size:     size,
			Total:    len(f.users),
			LastPage: (len(f.users) + size - 1) / size,
		},
	}, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username, passwordHash, firstPassword string) (*domain.User, error) {
	f.createCalls++
	for _, u := range f.users {
		if u.Username == username {
			return nil, errors.NewConflictError("username already exists")
		}
	}
	now := time.Now()
	user := &domain.User{
		ID:            fmt.Sprintf("user-%d", len(f.users)+1),
		Username:      username,
		PasswordHash:  passwordHash,
		FirstPassword: firstPassword,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.users = append(f.users, user)
	return user, nil
}

// fakeAuthService only implements the hashing used by the admin service
type fakeAuthService struct {
	hashCalls int
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	return nil, nil
}

func (f *fakeAuthService) LoginAdmin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	return nil, nil
}

func (f *fakeAuthService) Verify(tokenString string) (*domain.AccessClaims, error) {
	return nil, nil
}

func (f *fakeAuthService) HashPassword(password string) (string, error) {
	f.hashCalls++
	return "hashed:" + password, nil
}
