package config

import (
	"os"
	"strconv"
)

// AppConfig holds environment-driven configuration. Secrets never get
// code defaults; they arrive via the environment or a .env file.
type AppConfig struct {
	Port        string
	DatabaseURL string
	SiteURL     string
	GinMode     string

	SessionSecret string

	// SMTP for the share-by-email feature
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads configuration from the environment. godotenv has already
// populated it from .env when one exists.
func Load() AppConfig {
	return AppConfig{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SiteURL:     getenv("SITE_URL", "http://localhost:8080"),
		GinMode:     os.Getenv("GIN_MODE"),

		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),

		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogPath:       os.Getenv("LOG_PATH"),
		LogMaxSizeMB:  getint("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getint("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getint("LOG_MAX_AGE_DAYS", 7),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
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
