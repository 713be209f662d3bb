// Package repositories backs the development backend with in-memory data:
// seeded users, the catalog, and the orders created while it runs. Nothing
// here survives a restart, which is exactly what hermetic tests want.
package repositories

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cafe-storefront/models"
	"cafe-storefront/utils"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrOrderNotFound = errors.New("order not found")
)

// StoredUser pairs the public identity with its password hash.
type StoredUser struct {
	models.User
	HashedPassword string
}

type MemoryRepository struct {
	mu       sync.Mutex
	users    map[string]*StoredUser // keyed by id
	products []models.Product
	events   []models.Event
	orders   []*models.Order
}

// NewMemoryRepository seeds the catalog from the static data plus a default
// admin account matching the storefront's documented dev credentials.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		users:    make(map[string]*StoredUser),
		products: models.MockProducts,
		events:   models.MockEvents,
	}

	hash, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	admin := &StoredUser{
		User: models.User{
			ID:        uuid.NewString(),
			Username:  "admin",
			Email:     "admin@cafe.test",
			FullName:  "Admin User",
			Role:      models.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now(),
		},
		HashedPassword: hash,
	}
	r.users[admin.ID] = admin

	return r
}

func (r *MemoryRepository) FindUserByEmail(email string) (*StoredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryRepository) FindUserByID(id string) (*StoredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// CreateUser rejects duplicate emails and usernames, then stores the user
// with a fresh id.
func (r *MemoryRepository) CreateUser(user models.User, hashedPassword string) (*StoredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, ErrUserExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.IsActive = true
	stored := &StoredUser{User: user, HashedPassword: hashedPassword}
	r.users[user.ID] = stored

	copied := *stored
	return &copied, nil
}

func (r *MemoryRepository) Products() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *MemoryRepository) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]models.Event, len(r.events))
	copy(events, r.events)
	return events
}

func (r *MemoryRepository) UpcomingEvents() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	upcoming := make([]models.Event, 0, len(r.events))
	for _, event := range r.events {
		if event.Status == "upcoming" {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming
}

// CreateOrder assigns the id and order number and stores the order.
func (r *MemoryRepository) CreateOrder(order *models.Order) *models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	order.OrderNumber = fmt.Sprintf("ORD%s", time.Now().Format("20060102150405"))
	order.CreatedAt = time.Now()

	copied := *order
	r.orders = append(r.orders, &copied)
	return order
}

func (r *MemoryRepository) FindOrder(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateOrder applies fn to the stored order under the lock.
func (r *MemoryRepository) UpdateOrder(id string, fn func(*models.Order)) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			fn(order)
			copied := *order
			return &copied, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Orders returns all orders, or only those of the given customer when
// customerID is non-empty.
func (r *MemoryRepository) Orders(customerID string) []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if customerID == "" || order.CustomerID == customerID {
			orders = append(orders, *order)
		}
	}
	return orders
}
