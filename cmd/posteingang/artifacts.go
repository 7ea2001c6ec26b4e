package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/posteingang/internal/core"
	"github.com/joseph-ayodele/posteingang/internal/export"
)

// writeArtifacts stores every deliverable of res in dir and returns the paths
// written, in a stable order.
func writeArtifacts(dir string, res *core.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	date := res.IntakeDate
	var written []string
	write := func(name string, data []byte) error {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	for _, g := range res.Groups {
		if err := write(export.ArchiveName(date, g.Staff), g.Archive); err != nil {
			return written, err
		}
		if err := write(export.ManifestName(date, g.Staff), g.Manifest); err != nil {
			return written, err
		}
	}
	if err := write(export.OverviewName(date), res.Overview); err != nil {
		return written, err
	}
	if res.GapReport != nil {
		if err := write(export.GapReportName(date), res.GapReport); err != nil {
			return written, err
		}
	}
	return written, nil
}
