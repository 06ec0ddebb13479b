package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/abank-demo/abank-be/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account lookups, transfers and registry stats.
type AccountHandler struct {
	registry  bank.RegistryProvider
	transfers bank.TransferProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(registry bank.RegistryProvider, transfers bank.TransferProvider) *AccountHandler {
	return &AccountHandler{registry: registry, transfers: transfers}
}

// TransferPayload mirrors the front end's transfer form.
type TransferPayload struct {
	Username string          `json:"username"`
	ToIBAN   string          `json:"toIban"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// TransferResponse wraps the updated snapshot with a display message.
type TransferResponse struct {
	Message string                 `json:"message"`
	Account models.AccountSnapshot `json:"account"`
}

// Get returns the current snapshot for the username in the URL.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	account, err := h.registry.Get(username)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Account lookup failed")
		writeBankError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// Transfer applies an outgoing transfer and returns the updated snapshot.
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var payload TransferPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	account, err := h.transfers.Transfer(r.Context(), payload.Username, payload.ToIBAN, payload.Amount, payload.Note)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Transfer rejected")
		writeBankError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TransferResponse{Message: "Transfer completed.", Account: account})
}

// Stats returns registry totals.
func (h *AccountHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Stats())
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
