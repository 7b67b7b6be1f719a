package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv loads database configuration from SNI_DB_* environment
// variables, applying defaults suitable for local development.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:            getEnvOrDefault("SNI_DB_HOST", "localhost"),
		User:            getEnvOrDefault("SNI_DB_USER", "sni"),
		Password:        os.Getenv("SNI_DB_PASSWORD"),
		Database:        getEnvOrDefault("SNI_DB_NAME", "sni"),
		SSLMode:         getEnvOrDefault("SNI_DB_SSLMODE", "disable"),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	port, err := strconv.Atoi(getEnvOrDefault("SNI_DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNI_DB_PORT: %w", err)
	}
	cfg.Port = port

	maxOpen, err := strconv.Atoi(getEnvOrDefault("SNI_DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNI_DB_MAX_OPEN_CONNS: %w", err)
	}
	cfg.MaxOpenConns = maxOpen

	maxIdle, err := strconv.Atoi(getEnvOrDefault("SNI_DB_MAX_IDLE_CONNS", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNI_DB_MAX_IDLE_CONNS: %w", err)
	}
	cfg.MaxIdleConns = maxIdle

	if v := os.Getenv("SNI_DB_CONN_MAX_LIFETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNI_DB_CONN_MAX_LIFETIME: %w", err)
		}
		cfg.ConnMaxLifetime = d
	}

	if v := os.Getenv("SNI_DB_CONN_MAX_IDLE_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNI_DB_CONN_MAX_IDLE_TIME: %w", err)
		}
		cfg.ConnMaxIdleTime = d
	}

	if cfg.Password == "" {
		return Config{}, fmt.Errorf("SNI_DB_PASSWORD is required")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable before opening a pool.
func (c Config) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("database password is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got %d", c.MaxIdleConns)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) cannot exceed max open connections (%d)", c.MaxIdleConns, c.MaxOpenConns)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
