package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/portfolio-api/internal/domain"
)

// DefaultResumeURL is the link sent in every acknowledgement email unless
// RESUME_URL overrides it.
const DefaultResumeURL = "https://drive.google.com/file/d/1P0T8snDYE0APvkDkoPAt53IrFUdg-RqD/view"

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DatabaseURL string

	// Acknowledgement email. Both EmailUser and EmailPass must be set for
	// notifications to be sent.
	EmailUser     string
	EmailPass     string
	EmailFromName string
	SMTPHost      string
	SMTPPort      int

	OwnerName string
	ResumeURL string

	// Owner alert over SNS; disabled while OwnerAlertPhone is empty.
	OwnerAlertPhone string
	AWSRegion       string
	AWSEndpointURL  string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID  string
	AWSSecretKey    string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:  getEnv("APP_PORT", "5001"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPass:     getEnv("EMAIL_PASS", ""),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Portfolio"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),

		OwnerName: getEnv("OWNER_NAME", "Aditya Goyal"),
		ResumeURL: getEnv("RESUME_URL", DefaultResumeURL),

		OwnerAlertPhone: getEnv("OWNER_ALERT_PHONE", ""),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:  getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID:  getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

// Validate reports configuration that must stop the process from starting.
// Missing email credentials are not an error: they only disable notifications.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set: %w", domain.ErrMissingConfig)
	}
	return nil
}

// EmailEnabled reports whether both email credentials are present.
func (c *Config) EmailEnabled() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
