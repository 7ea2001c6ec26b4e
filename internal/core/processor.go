package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/posteingang/internal/async"
	"github.com/joseph-ayodele/posteingang/internal/common"
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/export"
	"github.com/joseph-ayodele/posteingang/internal/pdftext"
	"github.com/joseph-ayodele/posteingang/internal/registry"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/segment"
)

// PageSource yields the text layer of every page of a PDF.
type PageSource interface {
	ExtractPages(ctx context.Context, path string) (pdftext.ExtractionResult, error)
}

// ContentFactory opens the page cutter for one input PDF.
type ContentFactory func(path string) export.ContentSource

// Input is one day's batch.
type Input struct {
	PDFPath    string
	Registry   registry.Table
	IntakeDate time.Time
}

// Result is everything a run produced, plus a summary for the log.
type Result struct {
	RunID      uuid.UUID
	IntakeDate time.Time
	Method     string
	Pages      int
	Labels     segment.Stats
	Documents  []*entity.ExtractedDocument
	Groups     []export.Group
	Overview   []byte
	GapReport  []byte
	GapRefs    []string
	Elapsed    time.Duration
}

// StaffCounts returns the number of documents per staff code.
func (r *Result) StaffCounts() map[string]int {
	out := make(map[string]int, len(r.Groups))
	for _, g := range r.Groups {
		out[g.Staff] = len(g.Rows)
	}
	return out
}

// Processor coordinates text extraction, segmentation, per-segment analysis
// and the final reduce into deliverables.
type Processor struct {
	logger  *slog.Logger
	rules   *rules.Rules
	pages   PageSource
	content ContentFactory
	pool    *async.Pool
}

func NewProcessor(
	logger *slog.Logger,
	r *rules.Rules,
	pages PageSource,
	content ContentFactory,
	pool *async.Pool,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if r == nil {
		r = rules.Default()
	}
	if content == nil {
		content = func(path string) export.ContentSource {
			return pdftext.NewSplitter(path, logger)
		}
	}
	if pool == nil {
		pool = async.NewPool(logger)
	}
	return &Processor{logger: logger, rules: r, pages: pages, content: content, pool: pool}
}

// Run processes one batch. A registry without the required columns aborts
// before the PDF is touched; nothing that happens to a single document does.
func (p *Processor) Run(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.New(), IntakeDate: in.IntakeDate}
	ctx = common.WithRunID(ctx, res.RunID.String())
	log := p.logger.With("run_id", res.RunID.String())

	// 1) Registry: the only fatal precondition
	idx, err := registry.Build(in.Registry, p.rules.Registry, log)
	if err != nil {
		log.Error("processor.registry.failed", "err", err)
		return nil, err
	}

	// 2) Text layer
	extracted, err := p.pages.ExtractPages(ctx, in.PDFPath)
	if err != nil {
		log.Error("processor.extract.failed", "path", in.PDFPath, "err", err)
		return nil, common.WrapError(err, "extract pages")
	}
	for _, w := range extracted.Warnings {
		log.Warn("text extraction warning", "warning", w)
	}
	res.Method = extracted.Method
	res.Pages = len(extracted.Pages)

	// 3) Classify and split; page texts are released once segments exist
	pages := segment.ClassifyPages(extracted.Pages)
	res.Labels = segment.Count(pages)
	segs := segment.Segment(pages)
	log.Info("batch segmented",
		"pages", res.Pages,
		"separators", res.Labels.Separators,
		"blank", res.Labels.Blanks,
		"segments", len(segs),
	)

	// 4) Per-segment analysis, results stored by segment position
	analyzer := NewAnalyzer(p.rules, idx, log)
	docs := make([]*entity.ExtractedDocument, len(segs))
	runErr := p.pool.Run(ctx, len(segs), func(ctx context.Context, i int) error {
		docs[i] = analyzer.Analyze(ctx, segs[i])
		return nil
	})
	if runErr != nil {
		log.Error("processor.analysis.interrupted", "err", runErr)
		return nil, fmt.Errorf("analysis: %w", runErr)
	}
	for i, d := range docs {
		if d == nil {
			docs[i] = analyzer.Fallback(segs[i], "analysis not run")
		}
	}
	res.Documents = docs

	// 5) Reduce
	out, err := export.NewAggregator(p.content(in.PDFPath), in.IntakeDate, log).Aggregate(docs)
	if err != nil {
		log.Error("processor.export.failed", "err", err)
		return nil, common.WrapError(err, "export")
	}
	res.Groups = out.Groups
	res.Overview = out.Overview
	res.GapReport = out.GapReport
	res.GapRefs = out.GapRefs
	res.Elapsed = time.Since(start)

	log.Info("batch complete",
		"documents", len(docs),
		"groups", len(res.Groups),
		"staff", res.StaffCounts(),
		"registry_gaps", len(res.GapRefs),
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res, nil
}
