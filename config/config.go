// Package config loads the process configuration from the environment,
// with optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the immutable process configuration. It is loaded once at
// startup and injected into the components that need it; nothing reads
// the environment after Load returns.
type Config struct {
	Address          string
	MongoURI         string
	MongoDatabase    string
	SigningKey       string
	TokenTTLDays     int
	PasswordHashCost int
}

// Load reads configuration from the environment. A .env file, when
// present, seeds variables that are not already set.
func Load() (*Config, error) {
	// missing .env is fine, the environment may be fully populated
	_ = godotenv.Load()

	cfg := &Config{
		Address:          getEnv("HTTP_ADDRESS", ":3000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "forum"),
		SigningKey:       os.Getenv("JWT_SECRET"),
		TokenTTLDays:     getEnvInt("JWT_EXPIRATION_DAYS", 30),
		PasswordHashCost: getEnvInt("PASSWORD_HASH_COST", 10),
	}

	if cfg.SigningKey == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// GetSigningKey returns the token signing secret
func (c *Config) GetSigningKey() string {
	return c.SigningKey
}

// GetTokenExpirationDays returns the token lifetime in days
func (c *Config) GetTokenExpirationDays() int {
	return c.TokenTTLDays
}

// GetPasswordHashCost returns the bcrypt work factor
func (c *Config) GetPasswordHashCost() int {
	return c.PasswordHashCost
}

// GetContextKey returns the ctx locals key for validated claims
func (c *Config) GetContextKey() string {
	return "claims"
}

// GetTokenLookup returns the token extraction spec
func (c *Config) GetTokenLookup() string {
	return "header:Authorization"
}

// GetAuthScheme returns the Authorization header scheme
func (c *Config) GetAuthScheme() string {
	return "Bearer"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
