package common

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PDFTOTEXT_BIN", "/usr/local/bin/pdftotext")
	t.Setenv("POSTEINGANG_WORKERS", "3")
	t.Setenv("ANALYSIS_TIMEOUT", "2s")
	t.Setenv("REGISTRY_HEADER_ROW", "4")
	t.Setenv("REGISTRY_SHEET", "Akten")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	if cfg.PDF.Pdftotext != "/usr/local/bin/pdftotext" || cfg.Batch.Workers != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Batch.AnalysisTimeout != 2*time.Second {
		t.Fatalf("timeout = %s", cfg.Batch.AnalysisTimeout)
	}
	if cfg.Registry.HeaderRow != 4 || cfg.Registry.Sheet != "Akten" {
		t.Fatalf("registry = %+v", cfg.Registry)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("level = %s", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("REGISTRY_HEADER_ROW", "first")
	t.Setenv("ANALYSIS_TIMEOUT", "soon")
	cfg := LoadConfig()
	if cfg.Registry.HeaderRow != 1 || cfg.Batch.AnalysisTimeout != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := LoadConfig()
	cfg.Batch.Workers = 0
	cfg.Batch.OutDir = " "
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != CodeConfig {
		t.Fatalf("err = %v, want CONFIG_ERROR", err)
	}
	v := NewValidator().Field("POSTEINGANG_WORKERS", 0, Positive).Field("POSTEINGANG_OUT_DIR", " ", Required)
	if len(v.Errors()) != 2 {
		t.Fatalf("errors = %v", v.Errors())
	}
}

func TestMissingColumnsIsFatal(t *testing.T) {
	err := WrapError(NewMissingColumnsError([]string{"Aktenzeichen", "Sachbearbeiter"}), "load registry")
	if !IsFatal(err) {
		t.Fatalf("IsFatal(%v) = false", err)
	}
	var mc *MissingColumnsError
	if !errors.As(err, &mc) || len(mc.Columns) != 2 {
		t.Fatalf("columns = %+v", mc)
	}
	if IsFatal(fmt.Errorf("no text: %w", ErrValidation)) {
		t.Fatal("validation error must not be fatal")
	}
	if WrapError(nil, "x") != nil {
		t.Fatal("WrapError(nil) must be nil")
	}
}
