package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/platform/payments"
	"github.com/pulkitchauhan42/TGP/pkg/config"
	"github.com/pulkitchauhan42/TGP/pkg/events"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// CheckoutCreator is the payment processor side of checkout.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error)
}

type PaymentService interface {
	CreateCheckout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	// CompleteCheckout records a settled session reported by the processor.
	CompleteCheckout(ctx context.Context, p *domain.CompletedPayment) error
}

type paymentService struct {
	processor CheckoutCreator
	bus       events.Publisher
	cfg       config.StripeConfig
}

func NewPaymentService(processor CheckoutCreator, bus events.Publisher, cfg config.StripeConfig) PaymentService {
	return &paymentService{processor: processor, bus: bus, cfg: cfg}
}

// CreateCheckout charges exactly req.Amount; the amount is not recomputed.
func (s *paymentService) CreateCheckout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	sess, err := s.processor.CreateCheckoutSession(ctx, payments.CheckoutParams{
		ProductName: s.cfg.ProductName,
		UnitAmount:  req.Amount,
		Currency:    s.cfg.Currency,
		SuccessURL:  s.cfg.SuccessURL,
		CancelURL:   s.cfg.CancelURL,
		Metadata: map[string]string{
			"email":    req.Email,
			"date":     req.Date,
			"time":     req.Time,
			"location": req.Location,
			"duration": strconv.FormatFloat(req.Duration, 'f', -1, 64),
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "checkout session failed", "email", req.Email, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	logger.InfoContext(ctx, "checkout session created", "session_id", sess.ID, "amount", req.Amount)

	if s.bus != nil {
		err := s.bus.Publish(ctx, events.PaymentCheckoutCreated, events.CheckoutCreatedEvent{
			Email:    req.Email,
			Amount:   req.Amount,
			Currency: s.cfg.Currency,
			Date:     req.Date,
			Time:     req.Time,
			Duration: req.Duration,
			Location: req.Location,
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to publish event", "subject", events.PaymentCheckoutCreated, "error", err)
		}
	}

	return &domain.CheckoutResponse{CheckoutURL: sess.URL}, nil
}

func (s *paymentService) CompleteCheckout(ctx context.Context, p *domain.CompletedPayment) error {
	logger.InfoContext(ctx, "checkout completed",
		"session_id", p.SessionID, "amount_total", p.AmountTotal, "currency", p.Currency)

	if s.bus == nil {
		return nil
	}
	return s.bus.Publish(ctx, events.PaymentCompleted, events.PaymentCompletedEvent{
		SessionID:   p.SessionID,
		AmountTotal: p.AmountTotal,
		Currency:    p.Currency,
		Metadata:    p.Metadata,
	})
}
