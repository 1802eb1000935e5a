package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and passed down explicitly; nothing else touches
// os.Getenv.
type Config struct {
	Port       string
	CORSOrigin string

	DatabaseDSN string

	SecretKey string
	TokenTTL  time.Duration

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	UploadDir string

	NotifyConcurrency int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnvString("PORT", "3000"),
		CORSOrigin: getEnvString("CORS_ORIGIN", "http://localhost:5173"),

		DatabaseDSN: getEnvString("DATABASE_DSN",
			"host=localhost user=postgres password=postgres dbname=hireloop port=5432 sslmode=disable"),

		SecretKey: getEnvString("SECRET_KEY", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		MailHost: getEnvString("MAIL_HOST", "localhost"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: getEnvString("MAIL_USER", ""),
		MailPass: getEnvString("MAIL_PASS", ""),
		MailFrom: getEnvString("MAIL_FROM", "no-reply@hireloop.io"),

		UploadDir: getEnvString("UPLOAD_DIR", "uploads"),

		NotifyConcurrency: getEnvInt("NOTIFY_CONCURRENCY", 4),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}
	if cfg.NotifyConcurrency < 1 {
		cfg.NotifyConcurrency = 1
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
