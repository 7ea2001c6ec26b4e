package pdftext

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// Splitter cuts the pages of one segment out of the source PDF.
type Splitter struct {
	path   string
	conf   *model.Configuration
	logger *slog.Logger
}

func NewSplitter(path string, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{path: path, conf: model.NewDefaultConfiguration(), logger: logger}
}

// Content returns a standalone PDF holding exactly the segment's pages.
func (s *Splitter) Content(seg entity.Segment) ([]byte, error) {
	if len(seg.Pages) == 0 {
		return nil, fmt.Errorf("segment %d has no pages", seg.Number)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	selected := make([]string, len(seg.Pages))
	for i, p := range seg.Pages {
		selected[i] = strconv.Itoa(p)
	}

	var buf bytes.Buffer
	if err := api.Trim(f, &buf, selected, s.conf); err != nil {
		return nil, fmt.Errorf("pdfcpu trim pages %v: %w", seg.Pages, err)
	}
	s.logger.Debug("segment pdf cut", "segment", seg.Number, "pages", len(seg.Pages), "bytes", buf.Len())
	return buf.Bytes(), nil
}
