package handler

import (
	"context"
	"time"

	"voting-be/internal/domain"
	"voting-be/pkg/errors"
)

// fakeAuthService drives login and verification outcomes in tests
type fakeAuthService struct {
	loginResp  *domain.LoginResponse
	loginErr   error
	verifyResp *domain.AccessClaims
	verifyErr  error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthService) LoginAdmin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthService) Verify(tokenString string) (*domain.AccessClaims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyResp, nil
}

func (f *fakeAuthService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

// fakeVotingService returns canned votes and records casts
type fakeVotingService struct {
	vote      *domain.Vote
	options   []string
	castID    string
	castErr   error
	lastCast  string
	lastVoter string
}

func (f *fakeVotingService) GetCurrentVote(ctx context.Context, userID string) (*domain.Vote, error) {
	return f.vote, nil
}

func (f *fakeVotingService) GetOptions(ctx context.Context) ([]string, error) {
	return f.options, nil
}

func (f *fakeVotingService) CastVote(ctx context.Context, userID, name string) (string, error) {
	if f.castErr != nil {
		return "", f.castErr
	}
	f.lastVoter = userID
	f.lastCast = name
	return f.castID, nil
}

// fakeAdminService returns canned admin results
type fakeAdminService struct {
	page      *domain.PaginatedPublicUsers
	created   *domain.PublicUser
	createErr error
	summary   *domain.VoteSummary
	lastPage  int
	lastSize  int
}

func (f *fakeAdminService) ListUsers(ctx context.Context, page, size int) (*domain.PaginatedPublicUsers, error) {
	f.lastPage = page
	f.lastSize = size
	return f.page, nil
}

func (f *fakeAdminService) CreateUser(ctx context.Context, username string) (*domain.PublicUser, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAdminService) GetSummary(ctx context.Context) (*domain.VoteSummary, error) {
	return f.summary, nil
}

func validLoginResponse() *domain.LoginResponse {
	return &domain.LoginResponse{
		AccessToken: "signed-token",
		ValidUntil:  time.Now().Add(time.Hour),
	}
}

func invalidCredentials() error {
	return errors.NewInvalidCredentialsError()
}
