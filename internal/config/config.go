package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	SourceFile    string
	OutputDir     string
	I18nOutputDir string
	SettingsFile  string
	ServerHost    string
	ServerPort    int
	LogLevel      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	outputDir := getEnv("OUTPUT_DIR", "db")

	return &Config{
		SourceFile:    getEnv("SOURCE_FILE", "translations.csv"),
		OutputDir:     outputDir,
		I18nOutputDir: getEnv("I18N_OUTPUT_DIR", "i18n"),
		SettingsFile:  getEnv("SETTINGS_FILE", filepath.Join(outputDir, "settings.json")),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnvInt("SERVER_PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
