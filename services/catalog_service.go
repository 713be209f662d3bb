package services

import (
	"context"
	"log"
	"time"

	"github.com/sony/gobreaker/v2"

	"cafe-storefront/models"
)

// CatalogAPI is the slice of the backend the read-only views need.
type CatalogAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	Events(ctx context.Context) ([]models.Event, error)
	UpcomingEvents(ctx context.Context) ([]models.Event, error)
	Orders(ctx context.Context, token string) ([]models.Order, error)
}

// CatalogService serves the product and event listings. Listing views never
// fail: when the backend is unreachable or rejects the request, the static
// mock data is served instead. A circuit breaker per listing keeps a dead
// backend from being probed on every render.
type CatalogService struct {
	api      CatalogAPI
	session  *AuthService
	products *gobreaker.CircuitBreaker[[]models.Product]
	events   *gobreaker.CircuitBreaker[[]models.Event]
}

func NewCatalogService(api CatalogAPI, session *AuthService) *CatalogService {
	return &CatalogService{
		api:      api,
		session:  session,
		products: gobreaker.NewCircuitBreaker[[]models.Product](breakerSettings("products")),
		events:   gobreaker.NewCircuitBreaker[[]models.Event](breakerSettings("events")),
	}
}

func breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("breaker %s: %s -> %s", name, from, to)
		},
	}
}

func (s *CatalogService) Products(ctx context.Context) []models.Product {
	products, err := s.products.Execute(func() ([]models.Product, error) {
		return s.api.Products(ctx)
	})
	if err != nil {
		log.Printf("product listing unavailable, serving mock data: %v", err)
		return models.MockProducts
	}
	return products
}

func (s *CatalogService) Events(ctx context.Context) []models.Event {
	events, err := s.events.Execute(func() ([]models.Event, error) {
		return s.api.Events(ctx)
	})
	if err != nil {
		log.Printf("event listing unavailable, serving mock data: %v", err)
		return models.MockEvents
	}
	return events
}

func (s *CatalogService) UpcomingEvents(ctx context.Context) []models.Event {
	events, err := s.events.Execute(func() ([]models.Event, error) {
		return s.api.UpcomingEvents(ctx)
	})
	if err != nil {
		log.Printf("upcoming events unavailable, serving mock data: %v", err)
		return models.MockEvents
	}
	return events
}

// OrderStats builds the admin dashboard summary. Product and event counts
// always fill in (mock fallback included); the order listing needs the
// session's bearer token and its error is returned alongside the partial
// stats.
func (s *CatalogService) OrderStats(ctx context.Context) (models.OrderStats, error) {
	stats := models.OrderStats{
		TotalProducts: len(s.Products(ctx)),
		TotalEvents:   len(s.Events(ctx)),
	}

	orders, err := s.api.Orders(ctx, s.session.Token())
	if err != nil {
		return stats, err
	}

	stats.TotalOrders = len(orders)
	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount
	}
	return stats, nil
}
