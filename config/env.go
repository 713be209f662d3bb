package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                string
	Port                  string
	BackendURL            string
	StateDir              string
	DeliveryFee           float64
	FreeDeliveryThreshold float64
	MinOrderAmount        float64
	PaymentConfirmDelay   time.Duration
	JWTSecret             string
	JWTExpiry             string
	RedisAddr             string
	RedisPassword         string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	confirmDelay, err := time.ParseDuration(getEnv("PAYMENT_CONFIRM_DELAY", "2s"))
	if err != nil {
		confirmDelay = 2 * time.Second
	}

	AppConfig = &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("APP_PORT", getEnv("PORT", "8082")),
		BackendURL:            getEnv("BACKEND_URL", "http://localhost:8082"),
		StateDir:              getEnv("STATE_DIR", "./state"),
		DeliveryFee:           getEnvFloat("DELIVERY_FEE", 50.0),
		FreeDeliveryThreshold: getEnvFloat("FREE_DELIVERY_THRESHOLD", 200.0),
		MinOrderAmount:        getEnvFloat("MIN_ORDER_AMOUNT", 100.0),
		PaymentConfirmDelay:   confirmDelay,
		JWTSecret:             getEnv("JWT_SECRET", "secret"),
		JWTExpiry:             getEnv("JWT_EXPIRY", "24h"),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Backend URL: %s", AppConfig.BackendURL)
}

// DeliverySettings extracts the pricing knobs used by cart display and checkout.
func (c *Config) DeliverySettings() DeliverySettings {
	return DeliverySettings{
		DeliveryFee:           c.DeliveryFee,
		FreeDeliveryThreshold: c.FreeDeliveryThreshold,
		MinOrderAmount:        c.MinOrderAmount,
	}
}

type DeliverySettings struct {
	DeliveryFee           float64 `json:"delivery_fee"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
	MinOrderAmount        float64 `json:"min_order_amount"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
