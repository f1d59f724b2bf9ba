package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DBDSN       string
	Environment string

	MigrationsPath string

	// Пороги движка статусов, в часах
	UrgentThresholdHours   int // до конца смены: стадия urgent
	WarningThresholdHours  int // до начала смены: напоминание
	CriticalThresholdHours int // до начала смены: срочное напоминание
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    os.Getenv("ENV"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	cfg.UrgentThresholdHours = envHours("URGENT_THRESHOLD_HOURS", 24)
	cfg.WarningThresholdHours = envHours("WARNING_THRESHOLD_HOURS", 24)
	cfg.CriticalThresholdHours = envHours("CRITICAL_THRESHOLD_HOURS", 6)

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

func envHours(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return hours
}
