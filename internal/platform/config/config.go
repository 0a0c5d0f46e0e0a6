// Package config loads application configuration from the environment and
// an optional .env file.
package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	AuthEnabled bool
	JWTSecret   string

	// RateLimit uses the limiter formatted-rate syntax, e.g. "100-M" for
	// 100 requests per minute. Empty disables rate limiting.
	RateLimit string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. When PGSQL_URL is empty the server runs on in-memory
// stores.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		AuthEnabled:      viper.GetBool("AUTH_ENABLED"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CORSAllowOrigins: viper.GetStringSlice("CORS_ALLOW_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Running with in-memory stores; data is lost on restart.")
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: AUTH_ENABLED with the default JWT_SECRET. Set JWT_SECRET in production.")
	}

	return cfg, nil
}
