// Package config — конфигурация сервера из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера.
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Сервисная база данных
	ServiceDatabasePath string        `json:"service_database_path"`
	MaxOpenConns        int           `json:"max_open_conns"`
	MaxIdleConns        int           `json:"max_idle_conns"`
	ConnMaxLifetime     time.Duration `json:"conn_max_lifetime"`

	// Генерация договоров
	TemplatePath string `json:"template_path"`
	SaveDir      string `json:"save_dir"`

	// Прайс (пустой путь — прайс, зашитый в приложение)
	CatalogPath string `json:"catalog_path"`

	// Ограничение частоты запросов разбора
	ParseRateLimit float64 `json:"parse_rate_limit"`
	ParseRateBurst int     `json:"parse_rate_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения
// с разумными значениями по умолчанию.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		ServiceDatabasePath: getEnv("SERVICE_DB_PATH", "contracts.db"),
		MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime:     getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		TemplatePath:        getEnv("TEMPLATE_PATH", ""),
		SaveDir:             getEnv("SAVE_DIR", "contracts"),
		CatalogPath:         getEnv("CATALOG_PATH", ""),
		ParseRateLimit:      getEnvFloat("PARSE_RATE_LIMIT", 20),
		ParseRateBurst:      getEnvInt("PARSE_RATE_BURST", 40),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("порт сервера не задан")
	}
	if c.ServiceDatabasePath == "" {
		return fmt.Errorf("путь к сервисной БД не задан")
	}
	if c.SaveDir == "" {
		return fmt.Errorf("каталог сохранения договоров не задан")
	}
	if c.ParseRateLimit <= 0 {
		return fmt.Errorf("некорректный лимит частоты запросов: %v", c.ParseRateLimit)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
