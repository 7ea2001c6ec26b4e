package common

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	PDF      PDFConfig
	Batch    BatchConfig
	Registry RegistryConfig
	Rules    RulesConfig
	LogLevel slog.Level
}

// PDFConfig holds text-layer extraction configuration
type PDFConfig struct {
	Pdftotext string
}

// BatchConfig holds per-run processing configuration
type BatchConfig struct {
	Workers         int
	AnalysisTimeout time.Duration
	OutDir          string
}

// RegistryConfig describes where the header row of the case registry sits
type RegistryConfig struct {
	Sheet     string // empty = first sheet
	HeaderRow int    // 1-based
}

// RulesConfig points at an optional rules override file
type RulesConfig struct {
	File string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		PDF: PDFConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
		},
		Batch: BatchConfig{
			Workers:         getEnvAsInt("POSTEINGANG_WORKERS", runtime.NumCPU()),
			AnalysisTimeout: getEnvAsDuration("ANALYSIS_TIMEOUT", 0),
			OutDir:          getEnv("POSTEINGANG_OUT_DIR", "./out"),
		},
		Registry: RegistryConfig{
			Sheet:     getEnv("REGISTRY_SHEET", ""),
			HeaderRow: getEnvAsInt("REGISTRY_HEADER_ROW", 1),
		},
		Rules: RulesConfig{
			File: getEnv("RULES_FILE", ""),
		},
		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(value))); err == nil {
			return lvl
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("PDFTOTEXT_BIN", c.PDF.Pdftotext, Required).
		Field("POSTEINGANG_OUT_DIR", c.Batch.OutDir, Required).
		Field("POSTEINGANG_WORKERS", c.Batch.Workers, Positive).
		Field("REGISTRY_HEADER_ROW", c.Registry.HeaderRow, Positive)
	if v.HasErrors() {
		return NewAppError(CodeConfig, v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}
