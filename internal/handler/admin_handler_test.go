package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voting-be/internal/domain"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	page := &domain.PaginatedPublicUsers{
		List: []domain.PublicUser{
			{ID: "user-1", Username: "alice", CreatedAt: time.Now()},
		},
		Pagination: domain.Pagination{Page: 2, Size: 5, Total: 11, LastPage: 3},
	}
	svc := &fakeAdminService{page: page}
	h := NewAdminHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/users?page=2&size=5", nil)
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, 5, svc.lastSize)

	var resp domain.PaginatedPublicUsers
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.List, 1)
	assert.Equal(t, "alice", resp.List[0].Username)
	assert.Equal(t, 3, resp.Pagination.LastPage)
}

func TestAdminHandler_ListUsers_QueryDefaults(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
		wantSize int
	}{
		{name: "missing params", target: "/admin/users", wantPage: 1, wantSize: 10},
		{name: "non numeric", target: "/admin/users?page=abc&size=xyz", wantPage: 1, wantSize: 10},
		{name: "page only", target: "/admin/users?page=3", wantPage: 3, wantSize: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAdminService{page: &domain.PaginatedPublicUsers{}}
			h := NewAdminHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.ListUsers(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantPage, svc.lastPage)
			assert.Equal(t, tt.wantSize, svc.lastSize)
		})
	}
}

func TestAdminHandler_CreateUser(t *testing.T) {
	created := &domain.PublicUser{
		ID:            "user-1",
		Username:      "alice",
		FirstPassword: "s3cretpass12",
		CreatedAt:     time.Now(),
	}
	h := NewAdminHandler(&fakeAdminService{created: created}, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "s3cretpass12", resp.FirstPassword)
}

func TestAdminHandler_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "short username", body: `{"username":"ab"}`},
		{name: "whitespace username", body: `{"username":"   "}`},
		{name: "malformed body", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(&fakeAdminService{}, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateUser(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, errors.ErrorTypeValidation, resp.Error.Type)
		})
	}
}

func TestAdminHandler_CreateUser_Duplicate(t *testing.T) {
	svc := &fakeAdminService{createErr: errors.NewInvalidArgumentError("username already exists")}
	h := NewAdminHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errors.ErrorTypeInvalidArgument, resp.Error.Type)
	assert.Equal(t, "username already exists", resp.Error.Message)
}

func TestAdminHandler_GetSummary(t *testing.T) {
	winner := "Alpha"
	summary := &domain.VoteSummary{
		Winner: &winner,
		Count:  10,
		List: []domain.VoteSummaryEntry{
			{Name: "Alpha", Count: 6, Percentage: 60},
			{Name: "Beta", Count: 4, Percentage: 40},
		},
	}
	h := NewAdminHandler(&fakeAdminService{summary: summary}, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/summary", nil)
	rec := httptest.NewRecorder()

	h.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.VoteSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Winner)
	assert.Equal(t, "Alpha", *resp.Winner)
	assert.Equal(t, 10, resp.Count)
	require.Len(t, resp.List, 2)
	assert.InDelta(t, 60.0, resp.List[0].Percentage, 0.001)
}
