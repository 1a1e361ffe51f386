package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBDriver      string
	DBDSN         string
	SessionSecret string
	SessionHours  int
	HRUsername    string
	HRPassword    string
	LogLevel      string
	StaticDir     string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          GetEnv("APP_ADDR", ":5000"),
		DBDriver:      strings.ToLower(GetEnv("DB_DRIVER", "sqlite")),
		DBDSN:         GetEnv("DB_DSN", "payroll.db"),
		SessionSecret: GetEnv("SESSION_SECRET", "your-secret-key"),
		SessionHours:  GetEnvAsInt("SESSION_HOURS", 12),
		HRUsername:    GetEnv("HR_USERNAME", "hr@company.name"),
		HRPassword:    GetEnv("HR_PASSWORD", "123"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		StaticDir:     GetEnv("STATIC_DIR", "./static"),
	}

	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "mysql" {
		return cfg, errors.New("unsupported DB_DRIVER: " + cfg.DBDriver)
	}
	if cfg.SessionHours <= 0 {
		cfg.SessionHours = 12
	}

	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
