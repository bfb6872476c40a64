package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// application config
	APP_PORT      string
	LOG_FILE_PATH string
	// database config
	DB_HOST              string
	DB_PORT              int
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_CONN_TIMEOUT      time.Duration
	DB_CONN_MAX_LIFETIME time.Duration
	DB_MAX_IDLE_CONNS    int
	DB_MAX_OPEN_CONNS    int
	// mail config
	SMTP_HOST string
	SMTP_PORT int
	SMTP_USER string
	SMTP_PASS string
	SMTP_FROM string
}

// LoadEnvConfig reads .env (when present) and materializes the process
// configuration. A missing .env file is not an error: all values fall back
// to real environment variables or defaults.
func LoadEnvConfig() error {
	_ = godotenv.Load()

	DefaultEnvConfig = &envConfig{
		APP_PORT:             getEnvString("APP_PORT", "3000"),
		LOG_FILE_PATH:        getEnvString("LOG_FILE_PATH", ""),
		DB_HOST:              getEnvString("DB_HOST", "localhost"),
		DB_PORT:              getEnvInt("DB_PORT", 5432),
		DB_USER:              getEnvString("DB_USER", "postgres"),
		DB_PASSWORD:          getEnvString("DB_PASSWORD", "postgres"),
		DB_NAME:              getEnvString("DB_NAME", "onboarding"),
		DB_SSL_MODE:          getEnvString("DB_SSL_MODE", "disable"),
		DB_CONN_TIMEOUT:      getEnvDuration("DB_CONN_TIMEOUT", 5*time.Second),
		DB_CONN_MAX_LIFETIME: getEnvDuration("DB_CONN_MAX_LIFETIME", 20*time.Minute),
		DB_MAX_IDLE_CONNS:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DB_MAX_OPEN_CONNS:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
		SMTP_HOST:            getEnvString("SMTP_HOST", ""),
		SMTP_PORT:            getEnvInt("SMTP_PORT", 587),
		SMTP_USER:            getEnvString("SMTP_USER", ""),
		SMTP_PASS:            getEnvString("SMTP_PASS", ""),
		SMTP_FROM:            getEnvString("SMTP_FROM", ""),
	}
	return nil
}

// MailConfigured reports whether every credential needed for real SMTP
// delivery is present. When false the notifier runs in simulation mode.
func (c *envConfig) MailConfigured() bool {
	return c.SMTP_HOST != "" && c.SMTP_USER != "" && c.SMTP_PASS != ""
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
