package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	httpmw "github.com/pulkitchauhan42/TGP/internal/http/middleware"
	"github.com/pulkitchauhan42/TGP/internal/http/response"
	"github.com/pulkitchauhan42/TGP/internal/service"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
	mw "github.com/pulkitchauhan42/TGP/pkg/middleware"
)

const maxBodyBytes = 1 << 20

// WebhookVerifier checks a Stripe webhook delivery. A nil payment with a
// nil error means the event is not one we act on.
type WebhookVerifier interface {
	CompletedPayment(payload []byte, signature string) (*domain.CompletedPayment, error)
}

type Handlers struct {
	Auth     service.AuthService
	Bookings service.BookingService
	Payments service.PaymentService

	// Optional collaborators; nil disables the feature.
	Webhook     WebhookVerifier
	Idempotency mw.IdempotencyStore
	RateCounter httpmw.Counter

	IdempotencyTTL time.Duration
	AuthRateLimit  httpmw.RateLimitConfig
}

type RouterOptions struct {
	ServiceName    string
	AllowedOrigins []string
	// Frontend serves unmatched GET requests, typically the SPA. Nil means
	// every unmatched route is a plain 404.
	Frontend http.Handler
}

// NewRouter assembles the full HTTP surface: global middleware, /healthz,
// the /api routes and the frontend fallback.
func NewRouter(h *Handlers, opts RouterOptions) chi.Router {
	if opts.ServiceName == "" {
		opts.ServiceName = "api"
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName(opts.ServiceName))
	r.Use(mw.Health)
	r.Use(mw.Logging)
	r.Use(mw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.IdempotencyHeader, mw.RequestIDHeader},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/api", h.Routes())

	if opts.Frontend != nil {
		r.NotFound(opts.Frontend.ServeHTTP)
	} else {
		r.NotFound(notFound)
	}
	r.MethodNotAllowed(notFound)
	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

// Routes declares the /api table. Signup and login sit in front of the
// auth gate; every other route is behind it.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	// A known path with the wrong method is just another unmatched route.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	if h.Idempotency != nil {
		r.Use(mw.Idempotency(h.Idempotency, h.IdempotencyTTL))
	}

	r.Group(func(r chi.Router) {
		if h.RateCounter != nil {
			r.Use(httpmw.NewRateLimiter(h.RateCounter, h.AuthRateLimit).Middleware())
		}
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	if h.Webhook != nil {
		r.Post("/stripe-webhook", h.stripeWebhook)
	}

	r.Group(func(r chi.Router) {
		r.Use(httpmw.AuthGate(h.Auth))

		r.Get("/booked-slots", h.bookedSlots)
		r.Get("/available-slots", h.availableSlots)
		r.Post("/create-checkout-session", h.createCheckoutSession)

		r.With(httpmw.RequireUser).Post("/book", h.book)
		r.With(httpmw.RequireUser).Delete("/cancel-booking/{location}/{date}/{time}", h.cancelBooking)
	})

	return r
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.DebugContext(r.Context(), "rejecting request body", "error", err)
		response.BadRequest(w, response.MsgInvalidJSON)
		return false
	}
	return true
}

// writeServiceError maps domain errors to their API responses. Anything
// unrecognised is logged and answered with an opaque 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		response.BadRequest(w, response.MsgUserExists)
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.BadRequest(w, response.MsgInvalidCredentials)
	case errors.Is(err, domain.ErrUnauthorized):
		response.Unauthorized(w)
	case errors.Is(err, domain.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrPaymentFailed):
		response.WriteError(w, http.StatusInternalServerError, response.MsgCheckoutFailed)
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		response.InternalError(w)
	}
}
