package models

import "time"

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodStripe         PaymentMethod = "stripe"
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodOnlineTransfer PaymentMethod = "online_transfer"
)

type DeliveryInfo struct {
	FullName            string `json:"full_name"`
	ContactNumber       string `json:"contact_number"`
	DeliveryAddress     string `json:"delivery_address"`
	DeliveryDate        string `json:"delivery_date"`
	DeliveryTimeSlot    string `json:"delivery_time_slot"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type PickupInfo struct {
	FullName            string `json:"full_name"`
	ContactNumber       string `json:"contact_number"`
	PickupDate          string `json:"pickup_date"`
	PickupTimeSlot      string `json:"pickup_time_slot"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// OrderCreate is the order submission payload. Exactly one of DeliveryInfo
// and PickupInfo is set, matching OrderType.
type OrderCreate struct {
	CustomerEmail string        `json:"customer_email,omitempty"`
	OrderType     OrderType     `json:"order_type"`
	Items         []CartLine    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	DeliveryInfo  *DeliveryInfo `json:"delivery_info"`
	PickupInfo    *PickupInfo   `json:"pickup_info"`
}

type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"order_number"`
	CustomerID      string        `json:"customer_id,omitempty"`
	CustomerEmail   string        `json:"customer_email,omitempty"`
	OrderType       OrderType     `json:"order_type"`
	Items           []CartLine    `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	TotalAmount     float64       `json:"total_amount"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	DeliveryInfo    *DeliveryInfo `json:"delivery_info"`
	PickupInfo      *PickupInfo   `json:"pickup_info"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       *time.Time    `json:"updated_at,omitempty"`
}
