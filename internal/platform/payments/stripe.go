// Package payments wraps Stripe Checkout and Stripe webhook verification.
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// CheckoutParams describes a one-item card checkout. UnitAmount is in
// minor currency units.
type CheckoutParams struct {
	ProductName string
	UnitAmount  int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type StripeClient struct {
	sessions session.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return NewStripeClientWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

// NewStripeClientWithBackend lets callers point the client at another
// backend, such as stripe-mock.
func NewStripeClientWithBackend(secretKey string, b stripe.Backend) *StripeClient {
	return &StripeClient{sessions: session.Client{B: b, Key: secretKey}}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
					UnitAmount: stripe.Int64(p.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := c.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
