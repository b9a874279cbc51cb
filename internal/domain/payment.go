package domain

// CheckoutRequest is trusted as sent; Amount is in minor currency units.
type CheckoutRequest struct {
	Amount   int64   `json:"amount"`
	Email    string  `json:"email"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration float64 `json:"duration"`
	Location string  `json:"location"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// CompletedPayment is what a settled checkout session reports back.
type CompletedPayment struct {
	SessionID   string            `json:"session_id"`
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}
