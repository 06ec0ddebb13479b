package bank

import "errors"

// Domain errors returned by the registry and the transfer service. The
// HTTP layer maps them onto status codes; their messages are shown to the
// client as-is.
var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidDestination = errors.New("destination IBAN is not valid")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient balance")
)
