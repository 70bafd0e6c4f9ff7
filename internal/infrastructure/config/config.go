// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pkgpostgres "github.com/crediya/loan-service/pkg/postgres"
)

// KafkaConfig holds event bus settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// UserAPIConfig holds the user-management service endpoint.
type UserAPIConfig struct {
	BaseURL      string
	ServiceToken string
}

// AuthConfig holds JWT verification settings. PublicKeyPath takes precedence
// over Secret when both are set.
type AuthConfig struct {
	Secret        string
	PublicKeyPath string
	Issuer        string
}

// Config is the full service configuration.
type Config struct {
	HTTPPort    int
	ServiceName string
	LogLevel    string
	LogFormat   string
	DB          pkgpostgres.Config
	Kafka       KafkaConfig
	UserAPI     UserAPIConfig
	Auth        AuthConfig
}

// Load reads configuration from environment variables, applying development
// defaults where a variable is unset.
func Load() Config {
	return Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8081),
		ServiceName: "loan-service",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		DB: pkgpostgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "crediya"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "crediya_loans"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "loan-events"),
		},
		UserAPI: UserAPIConfig{
			BaseURL:      getEnv("USER_API_URL", "http://localhost:8080"),
			ServiceToken: getEnv("USER_API_TOKEN", ""),
		},
		Auth: AuthConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", ""),
			Issuer:        getEnv("JWT_ISSUER", "crediya"),
		},
	}
}

// Validate reports missing settings the service cannot run without.
func (c Config) Validate() error {
	if c.DB.Password == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	if c.Auth.Secret == "" && c.Auth.PublicKeyPath == "" {
		return fmt.Errorf("one of JWT_SECRET or JWT_PUBLIC_KEY_PATH is required")
	}
	return nil
}

// HTTPAddr returns the listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
