package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
	"github.com/Raymond9734/profile-directory/internal/validation"
)

// handleError maps service errors to HTTP responses
func handleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	handleErrorWithNotification(w, err, nil, logger)
}

// handleErrorWithNotification maps err like handleError and attaches the
// notification raised for the failed action
func handleErrorWithNotification(w http.ResponseWriter, err error, n *notify.Notification, logger *slog.Logger) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(w, fieldErrs)
		return
	}

	status, code, message := classifyError(err)
	if status == http.StatusInternalServerError {
		// don't expose internal details to the client
		logger.Error("internal server error",
			slog.String("error", err.Error()),
		)
	}

	respondJSON(w, status, ErrorResponse{
		Error:        ErrorDetail{Code: code, Message: message},
		Notification: n,
	})
}

func classifyError(err error) (int, string, string) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, "NOT_FOUND", apiErr.Message
		}
		return http.StatusBadGateway, "UPSTREAM_ERROR", apiErr.Message
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()

	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, "CONFLICT", err.Error()

	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"
	}
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case "INVALID_INPUT":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
