package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"voting-be/internal/domain"
	"voting-be/internal/service"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

// AuthHandler handles login requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginUser handles POST /auth/user/login
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeLoginRequest(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// LoginAdmin handles POST /auth/admin/login
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeLoginRequest(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	resp, err := h.authService.LoginAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// decodeLoginRequest parses and validates the login payload
func (h *AuthHandler) decodeLoginRequest(r *http.Request) (*domain.LoginRequest, error) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.NewValidationError("invalid request body", nil)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return nil, errors.NewValidationError("username is required", map[string]interface{}{"field": "username"})
	}
	if req.Password == "" {
		return nil, errors.NewValidationError("password is required", map[string]interface{}{"field": "password"})
	}

	return &req, nil
}
