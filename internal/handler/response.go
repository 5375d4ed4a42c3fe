package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"voting-be/internal/middleware"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps an error to the JSON error envelope. Anything that
// is not an AppError is treated as internal and reported with a generic
// message so no diagnostic detail leaks to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		log.WithError(err).Error("Unhandled error")
		appErr = errors.NewInternalError("internal server error", err)
	} else if appErr.Type == errors.ErrorTypeInternal {
		log.WithError(appErr).Error("Internal error")
	}

	requestID, _ := r.Context().Value(middleware.RequestIDContextKey).(string)

	response := &errors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.RequestID = requestID
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	_ = json.NewEncoder(w).Encode(response)
}
