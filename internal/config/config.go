package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config junta todo lo que el binario lee del entorno.
// Con DB_DRIVER vacío se usa el storage in-memory (modo dev).
type Config struct {
	Port string

	DBDriver string // "postgres" | "sqlite" | "" (memory)
	DBDSN    string

	NotifyWebhookURL    string
	NotifyWebhookAPIKey string
	DispatchInterval    time.Duration

	AuthVerifyURL string
	AuthAPIKey    string
}

// Load lee .env si existe (dev) y después el entorno.
// Las env vars ya seteadas ganan sobre el archivo.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		DBDriver:            strings.ToLower(getEnv("DB_DRIVER", "")),
		DBDSN:               getEnv("DB_DSN", ""),
		NotifyWebhookURL:    getEnv("NOTIFY_WEBHOOK_URL", ""),
		NotifyWebhookAPIKey: getEnv("NOTIFY_WEBHOOK_API_KEY", ""),
		DispatchInterval:    getEnvSeconds("DISPATCH_INTERVAL_SECONDS", 60),
		AuthVerifyURL:       getEnv("AUTH_VERIFY_URL", ""),
		AuthAPIKey:          getEnv("AUTH_API_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
