package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login. There is no session or
// token layer: a successful login simply returns the account snapshot.
type AuthHandler struct {
	registry bank.RegistryProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(registry bank.RegistryProvider) *AuthHandler {
	return &AuthHandler{registry: registry}
}

// CredentialsPayload is the request body for register and login.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new account registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	account, err := h.registry.Register(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Registration rejected")
		writeBankError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// Login authenticates a user and returns their account snapshot.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	account, err := h.registry.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		writeBankError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}
