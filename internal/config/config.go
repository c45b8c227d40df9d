// Package config loads the startup configuration from the environment. An
// optional .env file is read first; real deployments inject the variables
// directly. Every required value is validated up front so a misconfigured
// process refuses to start instead of failing per request.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the portal API.
type Config struct {
	// Server settings.
	Port       string
	Production bool

	// JWTSecret is the HMAC secret used to sign session tokens.
	JWTSecret string

	// UserCredentials is the raw JSON credential map, keyed by
	// username digest. Parsed by credstore.Load.
	UserCredentials []byte

	// Admin username/password digests, checked before the general store.
	AdminUsernameHash string
	AdminPasswordHash string

	// FellesOkterURL is the shared training sessions sheet exposed to the
	// frontend without authentication.
	FellesOkterURL string
}

// Load reads configuration from the environment. It returns an error for
// any missing or empty required variable.
func Load() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		Production: os.Getenv("APP_ENV") == "production",
	}

	var err error
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	creds, err := requireEnv("USER_CREDENTIALS")
	if err != nil {
		return nil, err
	}
	cfg.UserCredentials = []byte(creds)
	if cfg.AdminUsernameHash, err = requireEnv("ADMIN_USERNAME_HASH"); err != nil {
		return nil, err
	}
	if cfg.AdminPasswordHash, err = requireEnv("ADMIN_PASSWORD_HASH"); err != nil {
		return nil, err
	}
	if cfg.FellesOkterURL, err = requireEnv("FELLES_OKTER_SHEET_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is not set", key)
	}
	return value, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
