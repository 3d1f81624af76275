package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    string
	DatabaseURL string
	UploadDir   string

	JWTSecret string
	JWTTTL    time.Duration

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminRole     string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	MailTimeout time.Duration
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are mandatory; everything else has a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTTTL:            getDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedAdminRole:     getEnv("SEED_ADMIN_ROLE", "ADMIN"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getInt("SMTP_PORT", 587),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPass:          getEnv("SMTP_PASS", ""),
		MailFrom:          getEnv("MAIL_FROM", ""),
		MailTimeout:       getDuration("MAIL_TIMEOUT", 10*time.Second),
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// MailEnabled reports whether outbound mail is configured at all; when it
// is not, notifications are skipped rather than failed.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
