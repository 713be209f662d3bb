package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"cafe-storefront/config"
	"cafe-storefront/models"
)

// CheckoutState tracks where a submission is in the place-order sequence.
type CheckoutState string

const (
	CheckoutStateIdle                 CheckoutState = "IDLE"
	CheckoutStateValidating           CheckoutState = "VALIDATING"
	CheckoutStateSubmittingOrder      CheckoutState = "SUBMITTING_ORDER"
	CheckoutStateCreatingPayment      CheckoutState = "CREATING_PAYMENT"
	CheckoutStateAwaitingConfirmation CheckoutState = "AWAITING_CONFIRMATION"
	CheckoutStateCleared              CheckoutState = "CLEARED"
	CheckoutStateAborted              CheckoutState = "ABORTED"
)

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateCleared || s == CheckoutStateAborted
}

func (s CheckoutState) String() string {
	return string(s)
}

// Validation failures; these block locally before any network activity.
var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrEmailRequired = errors.New("guest email required")
	ErrPaymentFailed = errors.New("failed to create payment")
)

// OrderAPI is the slice of the backend the sequencer needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order models.OrderCreate, token string) (*models.Order, error)
	CreatePaymentIntent(ctx context.Context, orderID string) (*models.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, orderID string) (*models.ConfirmPaymentResponse, error)
}

// CheckoutRequest is one "place order" submission.
type CheckoutRequest struct {
	OrderType     models.OrderType
	GuestEmail    string
	PaymentMethod models.PaymentMethod
	DeliveryInfo  *models.DeliveryInfo
	PickupInfo    *models.PickupInfo

	// OnComplete runs once the submission reaches its cleared state; the UI
	// uses it to reset checkout forms and return to the menu.
	OnComplete func()
}

// CheckoutService runs the one-shot sequence from "place order" to cart
// clearing: validate, submit the order, request a payment intent, then
// confirm the payment after a fixed delay. The deferred confirmation is
// tied to the service's lifetime and cancelled by Close, so no callback can
// outlive its owner.
type CheckoutService struct {
	api      OrderAPI
	cart     *CartService
	session  *AuthService
	notifier Notifier
	settings config.DeliverySettings

	confirmDelay time.Duration

	mu          sync.Mutex
	state       CheckoutState
	abortReason string

	lifetime context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewCheckoutService(
	api OrderAPI,
	cart *CartService,
	session *AuthService,
	notifier Notifier,
	settings config.DeliverySettings,
	confirmDelay time.Duration,
) *CheckoutService {
	lifetime, cancel := context.WithCancel(context.Background())
	return &CheckoutService{
		api:          api,
		cart:         cart,
		session:      session,
		notifier:     notifier,
		settings:     settings,
		confirmDelay: confirmDelay,
		state:        CheckoutStateIdle,
		lifetime:     lifetime,
		cancel:       cancel,
	}
}

// Quote is the derived pricing for the current cart and order type.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// QuoteFor derives pricing from a subtotal: delivery is free for pickups and
// for subtotals at or above the free-delivery threshold.
func QuoteFor(subtotal float64, orderType models.OrderType, settings config.DeliverySettings) Quote {
	fee := 0.0
	if orderType == models.OrderTypeDelivery && subtotal < settings.FreeDeliveryThreshold {
		fee = settings.DeliveryFee
	}
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

// Quote prices the current cart.
func (s *CheckoutService) Quote(orderType models.OrderType) Quote {
	return QuoteFor(s.cart.TotalPrice(), orderType, s.settings)
}

// RemainingForFreeDelivery is how much more the cart needs before delivery
// becomes free; zero once the threshold is met.
func (s *CheckoutService) RemainingForFreeDelivery() float64 {
	remaining := s.settings.FreeDeliveryThreshold - s.cart.TotalPrice()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PlaceOrder runs the checkout sequence. It returns the created order once
// the payment intent exists and the deferred confirmation is scheduled; the
// confirmation itself completes in the background (Wait joins it).
//
// Failures before that point abort with the cart untouched. A payment-intent
// failure leaves the created order behind with no compensating rollback;
// that matches the backend contract, which has no cancel operation.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	s.setState(CheckoutStateValidating, "")

	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.abort(ErrCartEmpty.Error())
		s.notifier.Notify(Notification{
			Title:   "Cart is empty",
			Message: "Please add items to your cart before placing an order.",
			Variant: VariantDestructive,
		})
		return nil, ErrCartEmpty
	}

	user := s.session.User()
	if user == nil && req.GuestEmail == "" {
		s.abort(ErrEmailRequired.Error())
		s.notifier.Notify(Notification{
			Title:   "Email required",
			Message: "Please provide your email address for order updates.",
			Variant: VariantDestructive,
		})
		return nil, ErrEmailRequired
	}

	payload := s.buildPayload(req, user, lines)

	s.setState(CheckoutStateSubmittingOrder, "")
	order, err := s.api.CreateOrder(ctx, payload, s.session.Token())
	if err != nil {
		reason := failureReason(err, "There was an error processing your order. Please try again.")
		s.abort(reason)
		s.notifier.Notify(Notification{
			Title:   "Order failed",
			Message: reason,
			Variant: VariantDestructive,
		})
		return nil, err
	}

	s.setState(CheckoutStateCreatingPayment, "")
	if _, err := s.api.CreatePaymentIntent(ctx, order.ID); err != nil {
		s.abort(ErrPaymentFailed.Error())
		s.notifier.Notify(Notification{
			Title:   "Order failed",
			Message: "Failed to create payment",
			Variant: VariantDestructive,
		})
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, err)
	}

	s.notifier.Notify(Notification{
		Title:   "Processing payment...",
		Message: "Please wait while we process your order.",
		Variant: VariantDefault,
	})

	s.setState(CheckoutStateAwaitingConfirmation, "")
	s.scheduleConfirmation(order, req.OnComplete)

	return order, nil
}

func (s *CheckoutService) buildPayload(req CheckoutRequest, user *models.User, lines []models.CartLine) models.OrderCreate {
	email := req.GuestEmail
	if user != nil {
		email = user.Email
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodStripe
	}

	payload := models.OrderCreate{
		CustomerEmail: email,
		OrderType:     req.OrderType,
		Items:         lines,
		PaymentMethod: method,
	}
	if req.OrderType == models.OrderTypeDelivery {
		payload.DeliveryInfo = req.DeliveryInfo
	} else {
		payload.PickupInfo = req.PickupInfo
	}
	return payload
}

// scheduleConfirmation issues the payment confirmation after the configured
// delay. The transition to cleared is unconditional: a confirmation failure
// is logged, the order stays placed from the customer's point of view.
// Surfacing the real confirmation outcome needs backend support that does
// not exist yet.
func (s *CheckoutService) scheduleConfirmation(order *models.Order, onComplete func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.lifetime.Done():
			return
		case <-time.After(s.confirmDelay):
		}

		ctx, cancel := context.WithTimeout(s.lifetime, 10*time.Second)
		defer cancel()
		if _, err := s.api.ConfirmPayment(ctx, order.ID); err != nil {
			log.Printf("payment confirmation for order %s failed: %v", order.ID, err)
		}

		s.notifier.Notify(Notification{
			Title:   "Order placed successfully!",
			Message: fmt.Sprintf("Your order #%s has been confirmed. You'll receive an email confirmation shortly.", order.OrderNumber),
			Variant: VariantDefault,
		})

		s.cart.Clear()
		s.setState(CheckoutStateCleared, "")

		if onComplete != nil {
			onComplete()
		}
	}()
}

// Close cancels any pending deferred confirmation and waits for it to stop.
func (s *CheckoutService) Close() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until scheduled confirmations have run. Mainly for tests and
// graceful shutdown.
func (s *CheckoutService) Wait() {
	s.wg.Wait()
}

func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AbortReason is the reason recorded by the last abort, if any.
func (s *CheckoutService) AbortReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abortReason
}

func (s *CheckoutService) setState(state CheckoutState, reason string) {
	s.mu.Lock()
	s.state = state
	s.abortReason = reason
	s.mu.Unlock()
}

func (s *CheckoutService) abort(reason string) {
	s.setState(CheckoutStateAborted, reason)
}
