// README: Config loader with env defaults for HTTP, Firebase, Redis, Postgres, and AI settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr      string
		PublicURL string
	}
	Firebase struct {
		CredentialsFile string
		DatabaseURL     string
	}
	Redis struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	AI struct {
		GeminiKey string
	}
	Booking struct {
		LogTTL time.Duration
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("YATRA_HTTP_ADDR", ":8080")
	cfg.HTTP.PublicURL = envOrDefault("YATRA_PUBLIC_URL", "http://localhost:3000")
	cfg.Firebase.CredentialsFile = envOrDefault("YATRA_FIREBASE_CREDENTIALS", "")
	cfg.Firebase.DatabaseURL = envOrDefault("YATRA_FIREBASE_DB_URL", "")
	cfg.Redis.Addr = envOrDefault("YATRA_REDIS_ADDR", "localhost:6379")
	cfg.DB.DSN = envOrDefault("YATRA_DB_DSN", "")
	// Missing key is not fatal at startup: the AI provider reports a
	// configuration error at call time instead of attempting the request.
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Booking.LogTTL = time.Duration(envOrDefaultInt("YATRA_BOOKING_LOG_TTL_MIN", 60)) * time.Minute
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
