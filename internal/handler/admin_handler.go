package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"voting-be/internal/domain"
	"voting-be/internal/service"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

const minUsernameLength = 3

// AdminHandler handles administrative requests
type AdminHandler struct {
	adminService service.AdminService
	logger       *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page", 1)
	size := parseQueryInt(r, "size", 10)

	users, err := h.adminService.ListUsers(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, errors.NewValidationError("invalid request body", nil), h.logger)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < minUsernameLength {
		respondError(w, r, errors.NewValidationError("username must be at least 3 characters", map[string]interface{}{"field": "username"}), h.logger)
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), req.Username)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// GetSummary handles GET /admin/summary
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.GetSummary(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// parseQueryInt reads an integer query parameter with a fallback
func parseQueryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
