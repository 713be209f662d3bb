package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

// NewEmailService returns an error when SMTP is not configured; order
// creation treats that as "no email, carry on".
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s", order.OrderNumber))

	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Your order <strong>#%s</strong> has been received.</p>
		<ul>
	`, order.OrderNumber)

	for _, item := range order.Items {
		body += fmt.Sprintf("<li>%d x %s — %.2f</li>", item.Quantity, item.ProductName, item.TotalPrice)
	}

	body += fmt.Sprintf(`
		</ul>
		<p>Subtotal: %.2f<br>Delivery fee: %.2f<br><strong>Total: %.2f</strong></p>
		<p>Order type: %s</p>
	`, order.Subtotal, order.DeliveryFee, order.TotalAmount, order.OrderType)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
