package database

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageFile = "file"
	StorageDB   = "db"
)

// Config collects the environment driven settings of both servers.
type Config struct {
	StorageType string
	FilePath    string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	StatsTTL      time.Duration

	APIHost string
	APIPort string
	WebPort string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		StorageType:   getenv("HBNB_TYPE_STORAGE", StorageFile),
		FilePath:      getenv("HBNB_FILE_PATH", "file.json"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBName:        getenv("DB_NAME", "hbnb_dev_db"),
		DBUser:        getenv("DB_USER", "hbnb_dev"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		APIHost:       getenv("HBNB_API_HOST", "0.0.0.0"),
		APIPort:       getenv("HBNB_API_PORT", "5000"),
		WebPort:       getenv("HBNB_WEB_PORT", "5001"),
	}

	ttl, err := time.ParseDuration(getenv("HBNB_STATS_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("HBNB_STATS_TTL: %w", err)
	}
	cfg.StatsTTL = ttl

	if cfg.StorageType != StorageFile && cfg.StorageType != StorageDB {
		return nil, fmt.Errorf("HBNB_TYPE_STORAGE=%q: %w", cfg.StorageType, ErrUnknownStorage)
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
