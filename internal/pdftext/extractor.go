package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
}

type ExtractionResult struct {
	Pages    []string // raw text per page, index 0 = page 1
	Method   string   // "pdftotext" | "pdfcpu"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	return NewExtractorWithRunner(cfg, execRunner{}, logger)
}

// NewExtractorWithRunner is NewExtractor with a custom command runner.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: r, logger: logger}
}

// ExtractPages returns the text layer of every page in path, in page order.
// pdftotext is preferred; pdfcpu's content-stream reader is the fallback.
func (e *Extractor) ExtractPages(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	e.logger.Debug("starting text extraction", "path", path)

	pageCount, countErr := countPages(path)

	res := ExtractionResult{Method: "pdftotext"}
	pages, err := e.pdfToText(ctx, path)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		if countErr != nil {
			return res, fmt.Errorf("pdftotext: %w; pdfcpu: %v", err, countErr)
		}
		e.logger.Warn("pdftotext unavailable, using pdfcpu content streams", "path", path, "error", err)
		pages, err = extractWithPDFCPU(path)
		if err != nil {
			return res, fmt.Errorf("pdfcpu extract: %w", err)
		}
		res.Method = "pdfcpu"
	}

	if countErr == nil && pageCount > 0 {
		pages = fitPages(pages, pageCount)
	} else if countErr != nil {
		res.Warnings = append(res.Warnings, "page count from text layer: "+countErr.Error())
	}
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}

	res.Pages = pages
	res.Duration = time.Since(start)
	return res, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) ([]string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, e.logger, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, truncate(strings.TrimSpace(string(errb)), 512))
	}
	return SplitPages(string(out)), nil
}

// SplitPages cuts pdftotext output at its form-feed page breaks.
// pdftotext terminates every page with \f, so a trailing empty part is dropped.
func SplitPages(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\f")
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// fitPages pads or cuts pages to exactly n entries; missing pages count as blank.
func fitPages(pages []string, n int) []string {
	if len(pages) == n {
		return pages
	}
	out := make([]string, n)
	copy(out, pages)
	return out
}

func countPages(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}
