package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const DEV_ENV = "dev"
const PRO_ENV = "pro"

type Config struct {
	Environment        string
	DBDriver           string
	DBURL              string
	Address            string
	WhitelistHost      string
	CertCacheDir       string
	CorsAllowedOrigins []string
	RateLimit          float64
	LogLevel           log.Lvl
}

// loadConfig reads the environment, after seeding it from a .env file when
// one exists.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:        getEnv("ENV", PRO_ENV),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBURL:              getEnv("DB_URL", ""),
		Address:            getEnv("ADDRESS_LISTEN", ""),
		WhitelistHost:      getEnv("WHITELIST_HOST", ""),
		CertCacheDir:       getEnv("CERT_CACHE_DIR", "/var/www/.cache"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if cfg.Environment == DEV_ENV && cfg.Address == "" {
		cfg.Address = ":8080"
	}

	if v := getEnv("RATE_LIMIT", "0"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit < 0 {
			return Config{}, errors.New("RATE_LIMIT must be a non-negative number")
		}
		cfg.RateLimit = limit
	}

	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = log.DEBUG
	case "info":
		cfg.LogLevel = log.INFO
	case "warn":
		cfg.LogLevel = log.WARN
	case "error":
		cfg.LogLevel = log.ERROR
	default:
		return Config{}, errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
