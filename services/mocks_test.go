package services

import (
	"context"
	"sync"

	"cafe-storefront/models"
)

// recorderNotifier captures every notification for assertions.
type recorderNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *recorderNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorderNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *recorderNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, 0, len(r.notifications))
	for _, n := range r.notifications {
		titles = append(titles, n.Title)
	}
	return titles
}

func (r *recorderNotifier) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

// MockAuthAPI implements AuthAPI for testing.
type MockAuthAPI struct {
	LoginResp      *models.LoginResponse
	LoginErr       error
	AdminResp      *models.LoginResponse
	AdminErr       error
	RegisteredUser *models.User
	RegisterErr    error

	LoginCalls    int
	AdminCalls    int
	RegisterCalls int
}

func (m *MockAuthAPI) Login(_ context.Context, _, _ string) (*models.LoginResponse, error) {
	m.LoginCalls++
	return m.LoginResp, m.LoginErr
}

func (m *MockAuthAPI) AdminLogin(_ context.Context, _, _ string) (*models.LoginResponse, error) {
	m.AdminCalls++
	return m.AdminResp, m.AdminErr
}

func (m *MockAuthAPI) Register(_ context.Context, _ models.RegisterRequest) (*models.User, error) {
	m.RegisterCalls++
	return m.RegisteredUser, m.RegisterErr
}

// MockOrderAPI implements OrderAPI and records what the sequencer sent.
type MockOrderAPI struct {
	mu sync.Mutex

	CreateResp *models.Order
	CreateErr  error
	IntentResp *models.PaymentIntent
	IntentErr  error
	ConfirmErr error

	CreatedPayload *models.OrderCreate
	CreatedToken   string
	CreateCalls    int
	IntentCalls    int
	ConfirmCalls   int
	ConfirmedID    string
}

func (m *MockOrderAPI) CreateOrder(_ context.Context, order models.OrderCreate, token string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	m.CreatedPayload = &order
	m.CreatedToken = token
	return m.CreateResp, m.CreateErr
}

func (m *MockOrderAPI) CreatePaymentIntent(_ context.Context, _ string) (*models.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IntentCalls++
	return m.IntentResp, m.IntentErr
}

func (m *MockOrderAPI) ConfirmPayment(_ context.Context, orderID string) (*models.ConfirmPaymentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfirmCalls++
	m.ConfirmedID = orderID
	if m.ConfirmErr != nil {
		return nil, m.ConfirmErr
	}
	return &models.ConfirmPaymentResponse{Message: "Payment confirmed"}, nil
}

func (m *MockOrderAPI) calls() (create, intent, confirm int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls, m.IntentCalls, m.ConfirmCalls
}

// MockCatalogAPI implements CatalogAPI for testing.
type MockCatalogAPI struct {
	ProductsResp []models.Product
	ProductsErr  error
	EventsResp   []models.Event
	EventsErr    error
	OrdersResp   []models.Order
	OrdersErr    error

	ProductCalls int
	EventCalls   int
	OrderCalls   int
}

func (m *MockCatalogAPI) Products(_ context.Context) ([]models.Product, error) {
	m.ProductCalls++
	return m.ProductsResp, m.ProductsErr
}

func (m *MockCatalogAPI) Events(_ context.Context) ([]models.Event, error) {
	m.EventCalls++
	return m.EventsResp, m.EventsErr
}

func (m *MockCatalogAPI) UpcomingEvents(_ context.Context) ([]models.Event, error) {
	m.EventCalls++
	return m.EventsResp, m.EventsErr
}

func (m *MockCatalogAPI) Orders(_ context.Context, _ string) ([]models.Order, error) {
	m.OrderCalls++
	return m.OrdersResp, m.OrdersErr
}
