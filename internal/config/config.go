package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	RedisAddr         string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	StoragePath string

	// DefaultTimezone is the fallback reference timezone for vendors that
	// have not declared one.
	DefaultTimezone string
	// DefaultCapacity is the fallback max bookings per vendor day.
	DefaultCapacity int
	// AvailabilityDebounce collapses rapid calendar navigation.
	AvailabilityDebounce time.Duration
	// VerificationCodeTTL bounds how long an email/SMS code stays valid.
	VerificationCodeTTL time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Redis backs the verification-code store (default: localhost)
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	cfg.StoragePath = getEnv("STORAGE_PATH", "./data/uploads")
	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", "UTC")

	cfg.DefaultCapacity, err = getEnvAsInt("DEFAULT_CAPACITY", 1)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultCapacity < 1 {
		return nil, fmt.Errorf("DEFAULT_CAPACITY must be at least 1")
	}

	cfg.AvailabilityDebounce, err = getEnvAsDuration("AVAILABILITY_DEBOUNCE", 150*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg.VerificationCodeTTL, err = getEnvAsDuration("VERIFICATION_CODE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration
// (e.g. "150ms", "15m").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
