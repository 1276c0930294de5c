package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/premoball/premo-api/internal/usecase"
)

const internalErrorMessage = "internal server error"

// responseEnvelope is the fixed page contract: success flag, message
// (null on success), and the payload under content.
type responseEnvelope struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Content any     `json:"content"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, content any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, responseEnvelope{
		Success: true,
		Content: content,
	})
}

func writeFailure(ctx context.Context, w http.ResponseWriter, status int, message string) {
	ctx, span := startSpan(ctx, "httpapi.writeFailure")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		Success: false,
		Message: &message,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = internalErrorMessage
	}
	writeFailure(ctx, w, status, message)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeFailure(ctx, w, http.StatusInternalServerError, internalErrorMessage)
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrInconsistentData):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
