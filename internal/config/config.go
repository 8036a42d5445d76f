package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string
	RedisURL    string // empty keeps saves in memory
	DataDir     string
	StartMap    string
	SaveSlots   int
	LocaleDir   string
	Language    string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", "vnmenu.log"),
		RedisURL:    getEnv("REDIS_URL", ""),
		DataDir:     getEnv("DATA_DIR", "./data"),
		StartMap:    getEnv("START_MAP", "village.json"),
		SaveSlots:   parsePositiveInt(getEnv("SAVE_SLOTS", "8"), 8),
		LocaleDir:   getEnv("LOCALE_DIR", "./data/locales"),
		Language:    getEnv("LANGUAGE", "en"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
