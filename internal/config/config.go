package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	// BaseURL is the public origin used when building tracking links.
	BaseURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("FIBIDY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	baseURL := os.Getenv("FIBIDY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://fibidy.com"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BaseURL:     baseURL,
	}
}
