package handlers

import (
	"errors"
	"net/http"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/response"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// respondAppError maps a typed service error onto an HTTP status and sends
// a structured error body. The taxonomy is surfaced unmodified in the error
// field; nothing is collapsed into a generic message.
func respondAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrParameterMismatch),
		errors.Is(err, apperrors.ErrUnknownDurationToken),
		errors.Is(err, apperrors.ErrInvalidFundCode),
		errors.Is(err, apperrors.ErrInvalidStoreFile),
		errors.Is(err, apperrors.ErrInvalidStoreToken):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrFundNotFound),
		errors.Is(err, apperrors.ErrNoSelectableFunds):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrSelectionResolution):
		status = http.StatusUnprocessableEntity
	}

	response.RespondError(w, status, err.Error(), nil)
}
