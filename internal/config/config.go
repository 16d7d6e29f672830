// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DanielA2212/ServerSideProject/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort  string
	DataBackend string // "postgres" or "sqlite"
	DB          db.Config
	SQLitePath  string

	// AllowNonPositiveSum controls whether zero and negative cost sums
	// (refunds, corrections) are accepted.
	AllowNonPositiveSum bool
	// EnforceYearRange bounds report years to [2000, 2100] when set.
	EnforceYearRange bool
}

// LoadConfig loads configuration from environment variables, reading an
// optional .env file first. It returns an AppConfig instance or an error if
// any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // .env is optional

	backend := getEnv("DATA_BACKEND", "postgres")
	if backend != "postgres" && backend != "sqlite" {
		return nil, fmt.Errorf("invalid DATA_BACKEND %q: must be postgres or sqlite", backend)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return &AppConfig{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DataBackend: backend,
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "costmanager"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SQLitePath:          getEnv("SQLITE_DB_PATH", "./data/costmanager.db"),
		AllowNonPositiveSum: getEnvBool("COSTS_ALLOW_NONPOSITIVE_SUM", true),
		EnforceYearRange:    getEnvBool("REPORT_ENFORCE_YEAR_RANGE", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
