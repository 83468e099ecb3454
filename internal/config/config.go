package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBConn          string
	LogLevel        string
	JWTSecret       string
	TemplateDir     string
	OutputDir       string
	DocumentTTLDays int
	EmailCopy       bool
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SenderEmail     string
}

// NewConfig loads configuration from environment variables. A .env file
// next to the binary is picked up when present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=creditdocs sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		TemplateDir:  getEnv("TEMPLATE_DIR", "templates"),
		OutputDir:    getEnv("OUTPUT_DIR", "generated"),
		EmailCopy:    getEnv("EMAIL_COPY", "false") == "true",
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", ""),
	}

	ttl, err := strconv.Atoi(getEnv("DOCUMENT_TTL_DAYS", "30"))
	if err != nil || ttl < 1 {
		return nil, fmt.Errorf("DOCUMENT_TTL_DAYS must be a positive integer")
	}
	cfg.DocumentTTLDays = ttl

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TemplateDir == "" {
		return nil, fmt.Errorf("TEMPLATE_DIR is required")
	}
	if cfg.EmailCopy && cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is required when EMAIL_COPY is enabled")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
