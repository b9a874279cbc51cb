package response

import (
	"encoding/json"
	"net/http"

	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Client-facing messages. Their wording is part of the API.
const (
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnauthorized       = "Unauthorized"
	MsgCheckoutFailed     = "Error creating Stripe session"
	MsgInternal           = "internal server error"
	MsgInvalidJSON        = "invalid JSON body"
	MsgRateLimited        = "Too many requests. Try again later."
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, MsgUnauthorized)
}

func InternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, MsgInternal)
}

func RateLimit(w http.ResponseWriter) {
	WriteError(w, http.StatusTooManyRequests, MsgRateLimited)
}
