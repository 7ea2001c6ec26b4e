package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/async"
	"github.com/joseph-ayodele/posteingang/internal/common"
	"github.com/joseph-ayodele/posteingang/internal/core"
	"github.com/joseph-ayodele/posteingang/internal/pdftext"
	"github.com/joseph-ayodele/posteingang/internal/registry"
	"github.com/joseph-ayodele/posteingang/internal/rules"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	// Parse CLI flags; environment values are the defaults
	var (
		pdfPath   = flag.String("pdf", "", "scanned mail of the day, one PDF (required)")
		regPath   = flag.String("registry", "", "case registry workbook, .xlsx (required)")
		dateStr   = flag.String("date", "", "intake date YYYY-MM-DD (default today)")
		outDir    = flag.String("out", cfg.Batch.OutDir, "output directory")
		workers   = flag.Int("workers", cfg.Batch.Workers, "parallel segment analyses")
		rulesFile = flag.String("rules", cfg.Rules.File, "rules YAML replacing the built-in tables")
	)
	flag.Parse()

	if *pdfPath == "" || *regPath == "" {
		printError("Error: --pdf and --registry are required\n")
		os.Exit(1)
	}
	cfg.Batch.OutDir = *outDir
	cfg.Batch.Workers = *workers
	cfg.Rules.File = *rulesFile
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	intake := time.Now()
	if *dateStr != "" {
		parsed, err := time.Parse(constants.DateLayout, *dateStr)
		if err != nil {
			printError("Error: invalid --date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		intake = parsed
	}
	intake = time.Date(intake.Year(), intake.Month(), intake.Day(), 0, 0, 0, 0, time.UTC)

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	r, err := rules.Load(cfg.Rules.File)
	if err != nil {
		logger.Error("failed to load rules", "file", cfg.Rules.File, "error", err)
		os.Exit(1)
	}

	table, err := registry.LoadXLSXFile(*regPath, registry.LoadOptions{
		Sheet:     cfg.Registry.Sheet,
		HeaderRow: cfg.Registry.HeaderRow,
	})
	if err != nil {
		logger.Error("failed to read case registry", "path", *regPath, "error", err)
		os.Exit(1)
	}

	extractor := pdftext.NewExtractor(pdftext.Config{Pdftotext: cfg.PDF.Pdftotext}, logger)
	pool := async.NewPool(logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithTaskTimeout(cfg.Batch.AnalysisTimeout),
	)
	processor := core.NewProcessor(logger, r, extractor, nil, pool)

	logger.Info("starting batch",
		"pdf", *pdfPath,
		"registry", *regPath,
		"intake_date", intake.Format(constants.DateLayout),
		"workers", pool.Workers(),
	)
	res, err := processor.Run(ctx, core.Input{PDFPath: *pdfPath, Registry: table, IntakeDate: intake})
	if err != nil {
		if common.IsFatal(err) {
			logger.Error("batch aborted", "error", err)
		} else {
			logger.Error("batch failed", "error", err)
		}
		os.Exit(1)
	}

	written, err := writeArtifacts(cfg.Batch.OutDir, res)
	if err != nil {
		logger.Error("failed to write outputs", "dir", cfg.Batch.OutDir, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch %s complete!\n", res.RunID)
	fmt.Printf("- Pages: %d (%d separators, %d blank)\n", res.Pages, res.Labels.Separators, res.Labels.Blanks)
	fmt.Printf("- Documents: %d\n", len(res.Documents))
	for _, g := range res.Groups {
		fmt.Printf("  %-14s %d\n", g.Staff, len(g.Rows))
	}
	fmt.Printf("- Registry gaps: %d\n", len(res.GapRefs))
	for _, p := range written {
		fmt.Printf("- Output: %s\n", p)
	}
}
