package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SQLitePath    string
	RedisAddr     string
	AutosaveDelay time.Duration
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	delayMS, err := strconv.Atoi(getEnvOrDefault("AUTOSAVE_DEBOUNCE_MS", "1000"))
	if err != nil || delayMS <= 0 {
		delayMS = 1000
	}

	return &Config{
		Port:          os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnvOrDefault("SQLITE_PATH", "invoicer.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AutosaveDelay: time.Duration(delayMS) * time.Millisecond,
	}, nil
}

// InitDB opens the draft database: postgres when DATABASE_URL is set, a local
// sqlite file otherwise.
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
