// package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Mail provider names accepted in MAIL_PROVIDER.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// Config holds all application configuration.
type Config struct {
	// server
	HTTPPort int

	// cors
	AllowedOrigins []string // empty means allow all

	// mail
	HRInbox     string
	FromCareers string
	FromWebsite string
	Provider    string

	// resend
	ResendAPIKey string

	// smtp
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// uploads
	MaxFileSizeBytes int64

	// logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:         getEnvInt("PORT", 3001),
		HRInbox:          strings.TrimSpace(getEnv("HR_INBOX", "harikumarph123@gmail.com")),
		FromCareers:      getEnv("FROM_CAREERS", "Asionix Careers <onboarding@resend.dev>"),
		FromWebsite:      getEnv("FROM_WEBSITE", "Asionix Website <onboarding@resend.dev>"),
		Provider:         getEnv("MAIL_PROVIDER", ProviderResend),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		MaxFileSizeBytes: int64(getEnvInt("MAX_FILE_SIZE_BYTES", 5242880)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}

	// comma-separated origin allow-list, unset means allow all
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
