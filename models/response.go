package models

// LoginResponse is the shape both login endpoints return.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ErrorResponse carries the backend's reported reason for a rejection.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// PaymentIntent is the payment authorization handle for an order.
type PaymentIntent struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
}

type ConfirmPaymentResponse struct {
	Message       string        `json:"message"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status"`
}

// OrderStats is the summary the stub admin dashboard shows.
type OrderStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProducts int     `json:"total_products"`
	TotalEvents   int     `json:"total_events"`
}
