// Package config reads environment configuration, loading a .env file
// first when one is present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// BackendURL is the commerce API root the client talks to.
	BackendURL string
	// TokenPath overrides where the session token file lives.
	TokenPath string

	// Dev server settings.
	Port        string
	JWTSecret   string
	Currency    string
	DeliveryFee float64
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),
		TokenPath:   os.Getenv("NAVSWARA_TOKEN_PATH"),
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		Currency:    getEnv("CURRENCY", "₹"),
		DeliveryFee: getEnvFloat("DELIVERY_FEE", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
