package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"cafe-storefront/models"
	"cafe-storefront/storage"
)

// CartService holds the current order's line items. State transitions go
// through the pure reducer on models.Cart; the committed state is then
// persisted and, where the operation calls for it, announced through the
// notifier. Operations never fail: a storage write error is logged, the
// in-memory state stays committed.
type CartService struct {
	mu       sync.Mutex
	cart     models.Cart
	store    storage.Store
	notifier Notifier
}

func NewCartService(store storage.Store, notifier Notifier) *CartService {
	s := &CartService{store: store, notifier: notifier}
	s.restoreFromStorage()
	return s
}

func (s *CartService) restoreFromStorage() {
	saved, err := s.store.Get(storage.KeyCart)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("cart restore failed: %v", err)
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(saved), &lines); err != nil {
		log.Printf("cart restore: discarding unreadable state: %v", err)
		return
	}
	s.cart = models.Cart{Lines: lines}
}

func (s *CartService) persist() {
	payload, err := json.Marshal(s.cart.Lines)
	if err != nil {
		log.Printf("cart persist failed: %v", err)
		return
	}
	if err := s.store.Set(storage.KeyCart, string(payload)); err != nil {
		log.Printf("cart persist failed: %v", err)
	}
}

// AddItem merges the product into the cart and always notifies.
func (s *CartService) AddItem(product models.Product) {
	s.mu.Lock()
	s.cart = s.cart.Add(product)
	s.persist()
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:   "Added to cart",
		Message: fmt.Sprintf("%s has been added to your cart.", product.Name),
		Variant: VariantDefault,
	})
}

// RemoveItem drops the matching line. Only an actual removal notifies.
func (s *CartService) RemoveItem(productID string) {
	s.mu.Lock()
	removed, existed := s.cart.Find(productID)
	if existed {
		s.cart = s.cart.Remove(productID)
		s.persist()
	}
	s.mu.Unlock()

	if existed {
		s.notifier.Notify(Notification{
			Title:   "Removed from cart",
			Message: fmt.Sprintf("%s has been removed from your cart.", removed.ProductName),
			Variant: VariantDefault,
		})
	}
}

// SetQuantity updates the matching line; zero or negative behaves exactly
// like RemoveItem.
func (s *CartService) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	if _, existed := s.cart.Find(productID); existed {
		s.cart = s.cart.WithQuantity(productID, quantity)
		s.persist()
	}
	s.mu.Unlock()
}

// Clear empties the cart and always notifies.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.cart = s.cart.Clear()
	s.persist()
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:   "Cart cleared",
		Message: "All items have been removed from your cart.",
		Variant: VariantDefault,
	})
}

// Restore replaces the whole line list verbatim. No validation happens here;
// the caller owns the supplied data.
func (s *CartService) Restore(lines []models.CartLine) {
	s.mu.Lock()
	s.cart = models.Cart{Lines: lines}
	s.persist()
	s.mu.Unlock()
}

// Lines returns a snapshot copy of the current line items.
func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *CartService) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.QuantityOf(productID)
}

func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}
