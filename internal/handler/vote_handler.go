package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"voting-be/internal/domain"
	"voting-be/internal/middleware"
	"voting-be/internal/service"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

// VoteHandler handles voting requests for the authenticated user
type VoteHandler struct {
	votingService service.VotingService
	logger        *logger.Logger
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votingService service.VotingService, logger *logger.Logger) *VoteHandler {
	return &VoteHandler{
		votingService: votingService,
		logger:        logger,
	}
}

// GetCurrent handles GET /vote/current
func (h *VoteHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, r, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	vote, err := h.votingService.GetCurrentVote(r.Context(), claims.Subject)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, domain.CurrentVoteResponse{CurrentVote: vote})
}

// GetOptions handles GET /vote/options
func (h *VoteHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.votingService.GetOptions(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, domain.OptionsResponse{List: options})
}

// Cast handles POST /vote
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, r, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	var req domain.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, errors.NewValidationError("invalid request body", nil), h.logger)
		return
	}

	// Option name is validated at the boundary only; the service and
	// store accept whatever arrives here.
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, r, errors.NewValidationError("name is required", map[string]interface{}{"field": "name"}), h.logger)
		return
	}

	id, err := h.votingService.CastVote(r.Context(), claims.Subject, req.Name)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, domain.VoteResponse{ID: id})
}
