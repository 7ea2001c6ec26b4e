package pdftext

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
	"unicode/utf8"
)

// Runner starts the pdftotext binary. The extractor only needs stdout (the
// form-feed separated page texts) and stderr for its error message, so tests
// swap in a Runner that returns canned page text.
type Runner interface {
	Run(ctx context.Context, name string, logger *slog.Logger, args ...string) (stdout, stderr []byte, err error)
}

// execRunner runs the command as a child process bound to ctx.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	attrs := []any{
		"bin", name,
		"args", len(args),
		"elapsed_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		logger.Warn("pdftext.exec.failed", append(attrs, "error", err, "stderr", truncate(stderr.String(), 2048))...)
		return stdout.Bytes(), stderr.Bytes(), err
	}
	logger.Debug("pdftext.exec.ok", append(attrs, "text_bytes", stdout.Len())...)
	return stdout.Bytes(), stderr.Bytes(), nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
