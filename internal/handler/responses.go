package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage converts domain errors to HTTP status
// codes and messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, ErrMsgAssetNotFoundError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrAssetInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughFundsError
	case errors.Is(err, domain.ErrQuestNotComplete):
		return http.StatusBadRequest, ErrMsgQuestNotCompleteErr
	case errors.Is(err, domain.ErrQuestAlreadyClaimed):
		return http.StatusBadRequest, ErrMsgQuestAlreadyClaimed
	case errors.Is(err, domain.ErrAlreadyReferred):
		return http.StatusBadRequest, ErrMsgAlreadyReferredError
	case errors.Is(err, domain.ErrSelfReferral):
		return http.StatusBadRequest, ErrMsgSelfReferralError
	case errors.Is(err, domain.ErrInvalidReferral):
		return http.StatusBadRequest, ErrMsgInvalidReferralError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// error response
func respondServiceError(w http.ResponseWriter, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode == http.StatusInternalServerError {
		slog.Error(opName+" failed", "error", err)
	}
	respondError(w, statusCode, userMsg)
}
