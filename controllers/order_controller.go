package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cafe-storefront/config"
	"cafe-storefront/models"
	"cafe-storefront/repositories"
)

type OrderController struct {
	cfg   *config.Config
	repo  *repositories.MemoryRepository
	email *models.EmailService
}

func NewOrderController(cfg *config.Config, repo *repositories.MemoryRepository, email *models.EmailService) *OrderController {
	return &OrderController{cfg: cfg, repo: repo, email: email}
}

// CreateOrder recomputes totals server-side; the client's derived numbers
// are never trusted.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	subtotal := 0.0
	for _, item := range req.Items {
		subtotal += item.TotalPrice
	}
	deliveryFee := 0.0
	if req.OrderType == models.OrderTypeDelivery && subtotal < ctrl.cfg.FreeDeliveryThreshold {
		deliveryFee = ctrl.cfg.DeliveryFee
	}

	order := &models.Order{
		CustomerID:    c.GetString("user_id"),
		CustomerEmail: req.CustomerEmail,
		OrderType:     req.OrderType,
		Items:         req.Items,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		TotalAmount:   subtotal + deliveryFee,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		DeliveryInfo:  req.DeliveryInfo,
		PickupInfo:    req.PickupInfo,
	}
	if order.CustomerEmail == "" {
		order.CustomerEmail = c.GetString("user_email")
	}

	ctrl.repo.CreateOrder(order)

	if ctrl.email != nil && order.CustomerEmail != "" {
		if err := ctrl.email.SendOrderConfirmation(order); err != nil {
			log.Printf("Failed to send order confirmation for %s: %v", order.OrderNumber, err)
		}
	}

	c.JSON(http.StatusOK, order)
}

// GetAllOrders lists every order for admins and only the caller's own
// otherwise.
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	customerID := c.GetString("user_id")
	if c.GetString("user_role") == models.RoleAdmin {
		customerID = ""
	}
	c.JSON(http.StatusOK, ctrl.repo.Orders(customerID))
}

func (ctrl *OrderController) CreatePaymentIntent(c *gin.Context) {
	orderID := c.Param("id")

	order, err := ctrl.repo.FindOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Order not found"})
		return
	}

	intentID := "pi_" + uuid.NewString()
	_, err = ctrl.repo.UpdateOrder(orderID, func(o *models.Order) {
		o.PaymentIntentID = intentID
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, models.PaymentIntent{
		PaymentIntentID: intentID,
		ClientSecret:    fmt.Sprintf("%s_secret_%s", intentID, uuid.NewString()),
		Amount:          int64(order.TotalAmount * 100),
		Status:          "requires_confirmation",
	})
}

func (ctrl *OrderController) ConfirmPayment(c *gin.Context) {
	orderID := c.Param("id")

	order, err := ctrl.repo.FindOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Order not found"})
		return
	}
	if order.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "No payment intent found for this order"})
		return
	}

	now := time.Now()
	_, err = ctrl.repo.UpdateOrder(orderID, func(o *models.Order) {
		o.PaymentStatus = models.PaymentStatusPaid
		o.Status = models.OrderStatusConfirmed
		o.UpdatedAt = &now
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to confirm payment"})
		return
	}

	c.JSON(http.StatusOK, models.ConfirmPaymentResponse{
		Message:       "Payment confirmed",
		PaymentStatus: models.PaymentStatusPaid,
		OrderStatus:   models.OrderStatusConfirmed,
	})
}
