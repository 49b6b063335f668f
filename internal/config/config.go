package config

import "os"

// Config holds all environment-sourced settings for the relay.
type Config struct {
	// HTTP server
	Port string

	// MercadoPago API
	MPAccessToken    string
	MPAPIURL         string
	MPBackURLSuccess string
	MPBackURLFailure string
	MPBackURLPending string
	MPWebhookURL     string

	// MP-issued secret used to verify the x-signature header on
	// incoming webhooks. Verification is skipped when empty.
	MPWebhookSecret string

	// Downstream order service
	OrderAPIURL      string
	OrderWebhookPath string

	// Shared secret sent to the order service as x-webhook-secret.
	// The header is omitted when empty.
	WebhookSecret string
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		MPAccessToken:    getEnv("MP_ACCESS_TOKEN", ""),
		MPAPIURL:         getEnv("MP_API_URL", "https://api.mercadopago.com"),
		MPBackURLSuccess: getEnv("MP_BACK_URL_SUCCESS", ""),
		MPBackURLFailure: getEnv("MP_BACK_URL_FAILURE", ""),
		MPBackURLPending: getEnv("MP_BACK_URL_PENDING", ""),
		MPWebhookURL:     getEnv("MP_WEBHOOK_URL", ""),
		MPWebhookSecret:  getEnv("MP_WEBHOOK_SECRET", ""),
		OrderAPIURL:      getEnv("ORDER_API_URL", "http://localhost:3001/api/v1"),
		OrderWebhookPath: getEnv("ORDER_WEBHOOK_PATH", "/order/{reference}/payment/webhook"),
		WebhookSecret:    getEnv("WEBHOOK_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
