package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/rs/zerolog/log"
)

// messageResponse is the error/info payload shape the front end expects.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeBankError maps domain errors onto HTTP statuses. Anything outside
// the taxonomy is masked as a 500 so internals never leak to the client.
func writeBankError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bank.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.Is(err, bank.ErrInvalidInput),
		errors.Is(err, bank.ErrDuplicateUsername),
		errors.Is(err, bank.ErrInvalidCredentials),
		errors.Is(err, bank.ErrInvalidDestination),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrInsufficientFunds):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
}
