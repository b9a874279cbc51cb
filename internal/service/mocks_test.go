package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/platform/payments"
)

// ---------- Mocks ----------

type mockUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	findErr   error
	raceOnAdd bool // report a PK conflict from Create even though Find saw nothing
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raceOnAdd {
		return errors.Join(errors.New("constraint failed"), domain.ErrUserExists)
	}
	if _, ok := m.users[u.Email]; ok {
		return domain.ErrUserExists
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type mockBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []domain.Booking
	err      error
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	b.ID = m.nextID
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *mockBookingRepo) ListByDateLocation(_ context.Context, date, location string) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.Date == date && b.Location == location {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) Delete(_ context.Context, key domain.SlotKey) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	kept := m.bookings[:0]
	var n int64
	for _, b := range m.bookings {
		if b.Email == key.Email && b.Location == key.Location && b.Date == key.Date && b.Time == key.Time {
			n++
			continue
		}
		kept = append(kept, b)
	}
	m.bookings = kept
	return n, nil
}

type published struct {
	subject string
	data    interface{}
}

type mockBus struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (m *mockBus) Publish(_ context.Context, subject string, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, published{subject, data})
	return m.err
}

func (m *mockBus) Close() error { return nil }

func (m *mockBus) subjects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, p := range m.msgs {
		out = append(out, p.subject)
	}
	return out
}

type mockCheckout struct {
	last payments.CheckoutParams
	err  error
}

func (m *mockCheckout) CreateCheckoutSession(_ context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error) {
	m.last = p
	if m.err != nil {
		return nil, m.err
	}
	return &payments.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}
