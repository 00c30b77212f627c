package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full startup configuration, loaded once in main and
// injected into the components that need it. Business logic never
// reads the environment directly.
type Config struct {
	Port            string
	DatabaseURL     string
	SessionSecret   string
	SessionTTL      time.Duration
	RedisAddr       string
	RedisPassword   string
	AcceptedOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	S3 S3Config
}

// S3Config configures the object-storage collaborator. When Bucket is
// empty, uploads are disabled and the endpoints return 503.
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PublicBaseURL   string
	PathStyle       bool
}

// Load reads .env (when present) and the process environment into a
// Config with sensible defaults.
func Load() Config {
	// Missing .env is the normal case in production.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	c := New()

	return Config{
		Port:            GetString(c, "PORT", "8080"),
		DatabaseURL:     GetString(c, "DATABASE_URL", ""),
		SessionSecret:   GetString(c, "SESSION_SECRET", "fallback-secret-key"),
		SessionTTL:      time.Duration(GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour,
		RedisAddr:       GetString(c, "REDIS_ADDR", ""),
		RedisPassword:   GetString(c, "REDIS_PASSWORD", ""),
		AcceptedOrigins: splitOrigins(GetString(c, "ACCEPTED_ORIGINS", "*")),

		ReadTimeout:  time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,

		S3: S3Config{
			Bucket:          GetString(c, "S3_BUCKET", ""),
			Region:          GetString(c, "S3_REGION", "us-east-1"),
			AccessKeyID:     GetString(c, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: GetString(c, "S3_SECRET_ACCESS_KEY", ""),
			Endpoint:        GetString(c, "S3_ENDPOINT", ""),
			PublicBaseURL:   GetString(c, "S3_PUBLIC_BASE_URL", ""),
			PathStyle:       GetString(c, "S3_PATH_STYLE", "") == "true",
		},
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
