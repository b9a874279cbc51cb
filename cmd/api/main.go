package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pulkitchauhan42/TGP/internal/frontend"
	"github.com/pulkitchauhan42/TGP/internal/http/handlers"
	httpmw "github.com/pulkitchauhan42/TGP/internal/http/middleware"
	"github.com/pulkitchauhan42/TGP/internal/notify"
	"github.com/pulkitchauhan42/TGP/internal/platform/idempotency"
	"github.com/pulkitchauhan42/TGP/internal/platform/mailer"
	"github.com/pulkitchauhan42/TGP/internal/platform/payments"
	"github.com/pulkitchauhan42/TGP/internal/service"
	"github.com/pulkitchauhan42/TGP/pkg/config"
	"github.com/pulkitchauhan42/TGP/pkg/events"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

const serviceName = "tgp-api"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("API stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	bus, err := openBus(cfg.NATS)
	if err != nil {
		return err
	}
	defer bus.Close()

	if err := notify.New(newMailService(cfg.Email)).Start(bus); err != nil {
		return err
	}

	h := &handlers.Handlers{
		Auth: service.NewAuthService(st.users, cfg.Auth),
		Bookings: service.NewBookingService(st.bookings, bus, service.BookingOptions{
			DefaultLocation: cfg.Facility.DefaultLocation,
			Location:        cfg.Location(),
		}),
		Payments:       service.NewPaymentService(payments.NewStripeClient(cfg.Stripe.SecretKey), bus, cfg.Stripe),
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
		AuthRateLimit: httpmw.RateLimitConfig{
			Requests:   cfg.Redis.AuthRateLimit,
			Window:     cfg.Redis.AuthRateWindow,
			Prefix:     "auth",
			TrustProxy: cfg.Server.TrustProxyHeaders,
		},
	}

	if cfg.Stripe.WebhookSecret != "" {
		h.Webhook = payments.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	} else {
		logger.Warn("STRIPE_WEBHOOK_SECRET not set, webhook route disabled")
	}

	if cfg.Redis.URL != "" {
		rs, err := idempotency.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer rs.Close()
		h.Idempotency = rs
		if cfg.Redis.AuthRateLimit > 0 {
			h.RateCounter = rs
		}
		logger.Info("Redis connected", "idempotency_ttl", cfg.Redis.IdempotencyTTL)
	}

	opts := handlers.RouterOptions{
		ServiceName:    serviceName,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}
	if cfg.Frontend.Dir != "" {
		opts.Frontend = frontend.Handler(cfg.Frontend.Dir)
		logger.Info("Serving frontend", "dir", cfg.Frontend.Dir)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.NewRouter(h, opts),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting API", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down API...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openBus(cfg config.NATSConfig) (events.EventBus, error) {
	if cfg.URL == "" {
		logger.Info("NATS_URL not set, using in-process event bus")
		return events.NewLocalBus(), nil
	}
	bus, err := events.NewNATSEventBus(cfg.URL, serviceName)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to NATS", "url", cfg.URL)
	return bus, nil
}

func newMailService(cfg config.EmailConfig) mailer.Service {
	var sender mailer.Sender = mailer.NewDevMailer()
	if !cfg.DevMode && cfg.MailerSendKey != "" && cfg.FromEmail != "" {
		sender = mailer.NewMailer(cfg.MailerSendKey, cfg.FromName, cfg.FromEmail)
	} else {
		logger.Info("Email dev mode: messages are logged, not sent")
	}
	return mailer.NewBookingMailer(sender)
}
