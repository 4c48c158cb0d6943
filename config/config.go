package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string
	// DSN is the sqlite file path or the postgres connection string.
	DSN string
	// SeedSampleData wipes every table and reinserts the sample doctors on
	// startup. Destructive, development only.
	SeedSampleData bool
}

type RedisConfig struct {
	// Addr enables the doctor-list cache when non-empty.
	Addr string
}

type SMTPConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	AdminEmail string
	// DigestSchedule is a cron expression for the daily admin digest.
	DigestSchedule string
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
		},
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", "sqlite"),
			DSN:            getEnv("DB_DSN", "appointment_system.db"),
			SeedSampleData: getEnv("SEED_SAMPLE_DATA", "false") == "true",
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		SMTP: SMTPConfig{
			Host:           getEnv("SMTP_HOST", ""),
			Port:           getEnv("SMTP_PORT", "587"),
			User:           getEnv("EMAIL_USER", ""),
			Password:       getEnv("EMAIL_PASS", ""),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 7 * * *"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
