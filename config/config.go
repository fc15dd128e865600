package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

// Storage backends for the catalog snapshots.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Port        string
	AppEnv      string
	CORSOrigins []string

	// Catalog persistence
	StoreBackend   string
	StoreKeyPrefix string
	RedisURL       string
	DatabaseURL    string
	SQLitePath     string
	SeedFile       string
	WriteTimeout   time.Duration

	// Admin auth
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration

	// Rate limiting (admin routes)
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Media
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Email (cart quotes)
	ResendAPIKey    string
	ResendFromEmail string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:              "8081",
		AppEnv:            "development",
		CORSOrigins:       []string{"http://localhost:3000", "http://localhost:5173"},
		StoreBackend:      BackendMemory,
		StoreKeyPrefix:    "focusflash:",
		RedisURL:          "redis://localhost:6379",
		SQLitePath:        "focusflash.db",
		WriteTimeout:      5 * time.Second,
		AdminPassword:     "admin123",
		JWTSecret:         "dev-secret-key-change-in-production",
		JWTExpiry:         24 * time.Hour,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// Load returns the defaults overridden by the environment.
func Load() *Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// LoadFromEnv overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.AppEnv = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("STORE_BACKEND"); v != "" {
		c.StoreBackend = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("STORE_KEY_PREFIX"); ok {
		c.StoreKeyPrefix = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("CATALOG_SEED_FILE"); v != "" {
		c.SeedFile = v
	}
	if v := os.Getenv("STORE_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.WriteTimeout = d
		}
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		c.AdminPasswordHash = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.JWTExpiry = d
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RateLimitRequests = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.RateLimitWindow = d
		}
	}
	if v := os.Getenv("CLOUDINARY_CLOUD_NAME"); v != "" {
		c.CloudinaryCloudName = v
	}
	if v := os.Getenv("CLOUDINARY_API_KEY"); v != "" {
		c.CloudinaryAPIKey = v
	}
	if v := os.Getenv("CLOUDINARY_API_SECRET"); v != "" {
		c.CloudinaryAPISecret = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		c.ResendAPIKey = v
	}
	if v := os.Getenv("RESEND_FROM_EMAIL"); v != "" {
		c.ResendFromEmail = v
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// CloudinaryEnabled reports whether every Cloudinary credential is set.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
