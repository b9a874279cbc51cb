package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/http/response"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

func (h *Handlers) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var in domain.CheckoutRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.Payments.CreateCheckout(r.Context(), &in)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, res)
}

func (h *Handlers) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, "unreadable body")
		return
	}

	paid, err := h.Webhook.CompletedPayment(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		logger.WarnContext(r.Context(), "stripe webhook rejected", "error", err)
		response.BadRequest(w, "invalid webhook")
		return
	}
	if paid == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.Payments.CompleteCheckout(r.Context(), paid); err != nil {
		// A non-2xx makes Stripe redeliver the event.
		writeServiceError(r.Context(), w, fmt.Errorf("complete checkout: %w", err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
