// Package client talks to the café backend over REST. It is the only place
// that knows the collaborator's paths and error shape; callers see typed
// results, *APIError for rejections, and wrapped transport errors for
// network failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cafe-storefront/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a non-success response from the backend, carrying the
// reported reason when one was given.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsRejection reports whether err is a backend rejection rather than a
// transport failure.
func IsRejection(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&rejection)
		return &APIError{StatusCode: resp.StatusCode, Detail: rejection.Detail}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/admin-login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/", "", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/upcoming", "", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits the order payload; token may be empty for guests.
func (c *Client) CreateOrder(ctx context.Context, order models.OrderCreate, token string) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", token, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, orderID string) (*models.PaymentIntent, error) {
	var intent models.PaymentIntent
	path := fmt.Sprintf("/api/orders/%s/payment-intent", orderID)
	if err := c.do(ctx, http.MethodPost, path, "", nil, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, orderID string) (*models.ConfirmPaymentResponse, error) {
	var confirmed models.ConfirmPaymentResponse
	path := fmt.Sprintf("/api/orders/%s/confirm-payment", orderID)
	if err := c.do(ctx, http.MethodPost, path, "", nil, &confirmed); err != nil {
		return nil, err
	}
	return &confirmed, nil
}
