package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	DatabaseURL  string
	SaveDebounce time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// development convenience. Every value has a working default; only
// DATABASE_URL switches behavior (Postgres store instead of files).
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DataDir:      getenv("DATA_DIR", "resume-data"),
		DatabaseURL:  os.Getenv("SESSIONS_DATABASE_URL"),
		SaveDebounce: 2 * time.Second,
	}
	if v := os.Getenv("SAVE_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SaveDebounce = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
