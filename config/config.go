// config/config.go
package config

import (
	"log"
	"os"
)

// App holds the injected runtime settings. The session secret is passed
// down explicitly instead of being read wherever it is needed.
type App struct {
	Port          string
	SessionSecret string
	PublicDir     string
	StoreMode     string // "mongo" (default) or "memory"
}

// Load reads the application settings from the environment.
func Load() App {
	cfg := App{
		Port:          getEnv("PORT", "3000"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		StoreMode:     getEnv("STORE", "mongo"),
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
