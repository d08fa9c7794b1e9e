package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, messageResponse{Success: success, Message: message})
}

// writeError maps domain failures onto HTTP statuses. Anything outside the
// taxonomy is a persistence-level failure: logged in full, returned as a
// generic 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, false, err.Error())
	case errors.Is(err, domain.ErrLimitExceeded):
		writeMessage(w, http.StatusBadRequest, false, "You can only deposit up to 25% of the due amount")
	case errors.Is(err, domain.ErrAlreadyPaid):
		writeMessage(w, http.StatusBadRequest, false, "Job already paid")
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeMessage(w, http.StatusBadRequest, false, "Insufficient balance to pay for the job")
	case errors.Is(err, domain.ErrNoData):
		writeMessage(w, http.StatusNotFound, false, "No paid jobs in the selected period")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, false, "Not found")
	default:
		logger.Error("Unexpected failure", "error", err)
		writeMessage(w, http.StatusInternalServerError, false, "Internal server error")
	}
}
