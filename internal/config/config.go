package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Shopify  ShopifyConfig
	Pricing  PricingConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SessionTTL         time.Duration
	ConfigCacheTTL     time.Duration
}

type DatabaseConfig struct {
	Connection string
}

type ShopifyConfig struct {
	ShopDomain    string
	AdminToken    string
	StorefrontURL string
}

type PricingConfig struct {
	// PricePerSqM is the fallback rate applied when a measurement
	// falls outside every price matrix entry. Zero disables the
	// fallback entirely.
	PricePerSqM float64
}

type APIKeys struct {
	JwtSecret       string
	SubmissionTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			SessionTTL:         getEnvAsDuration("SESSION_TTL", 30*time.Minute),
			ConfigCacheTTL:     getEnvAsDuration("CONFIG_CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Shopify: ShopifyConfig{
			ShopDomain:    getEnv("SHOPIFY_SHOP_DOMAIN", ""),
			AdminToken:    getEnv("SHOPIFY_ADMIN_TOKEN", ""),
			StorefrontURL: getEnv("SHOPIFY_STOREFRONT_URL", ""),
		},
		Pricing: PricingConfig{
			PricePerSqM: getEnvAsFloat("PRICE_PER_SQM", 0),
		},
		Keys: APIKeys{
			JwtSecret:       getEnv("JWT_SECRET", ""),
			SubmissionTopic: getEnv("CONFIGURATION_SUBMITTED_TOPIC_NAME", "CONFIGURATION_SUBMITTED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
