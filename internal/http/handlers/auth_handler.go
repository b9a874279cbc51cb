package handlers

import (
	"net/http"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/http/response"
)

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var in domain.SignupRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.Auth.Signup(r.Context(), &in)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, res)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.Auth.Login(r.Context(), &in)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, res)
}
