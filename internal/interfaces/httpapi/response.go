package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/rainesports/site-api/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error []fieldViolation `json:"error"`
}

type fieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// validationError carries the per-field violations through the error chain
// so the boundary can surface them as a structured list.
type validationError struct {
	violations []fieldViolation
}

func (e *validationError) Error() string { return "validation failed" }

func (e *validationError) Unwrap() error { return usecase.ErrInvalidInput }

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *validationError
	if errors.As(err, &vErr) {
		writeJSON(ctx, w, http.StatusBadRequest, validationErrorResponse{Error: vErr.violations})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		writeInternalError(ctx, w)
	}
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
