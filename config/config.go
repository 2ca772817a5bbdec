package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	Currency string

	FrontendURL string

	ClerkSecretKey string
	ClerkAPIURL    string
	ClerkJWTPubKey string // PEM encoded RSA public key used to verify session tokens

	StripeSecretKey     string
	StripeWebhookSecret string

	SendgridAPIKey string
	EmailSender    string

	// Hours a purchase may stay pending before the expiry job fails it
	PendingPurchaseTTL int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "5000"),
		Currency: getEnv("CURRENCY", "usd"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		ClerkSecretKey: getEnv("CLERK_SECRET_KEY", ""),
		ClerkAPIURL:    getEnv("CLERK_API_URL", "https://api.clerk.com/v1"),
		ClerkJWTPubKey: getEnv("CLERK_JWT_PUBLIC_KEY", ""),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@example.com"),

		PendingPurchaseTTL: getEnvInt("PENDING_PURCHASE_TTL_HOURS", 24),
	}

	// Validate critical configuration
	if AppConfig.ClerkSecretKey == "" {
		log.Println("Warning: CLERK_SECRET_KEY is not set. User provisioning will fail.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set. Checkout will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
