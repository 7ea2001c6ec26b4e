package core

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/assign"
	"github.com/joseph-ayodele/posteingang/internal/common"
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/export"
	"github.com/joseph-ayodele/posteingang/internal/metadata"
	"github.com/joseph-ayodele/posteingang/internal/pdftext"
	"github.com/joseph-ayodele/posteingang/internal/reference"
	"github.com/joseph-ayodele/posteingang/internal/registry"
	"github.com/joseph-ayodele/posteingang/internal/rules"
)

// Analyzer turns one segment into an ExtractedDocument. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	rules     *rules.Rules
	index     *registry.Index
	refs      *reference.Extractor
	deadlines *metadata.DeadlineFinder
	assigner  *assign.Assigner
	logger    *slog.Logger
}

func NewAnalyzer(r *rules.Rules, idx *registry.Index, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		rules:     r,
		index:     idx,
		refs:      reference.NewExtractor(r),
		deadlines: metadata.NewDeadlineFinder(r.Deadline),
		assigner:  assign.New(r),
		logger:    logger,
	}
}

// Analyze never fails: a segment that cannot be analysed yields a document
// with empty fields and the default staff code.
func (a *Analyzer) Analyze(ctx context.Context, seg entity.Segment) (doc *entity.ExtractedDocument) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis panicked",
				"run_id", common.RunIDFromContext(ctx),
				"segment", seg.Number,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			doc = a.Fallback(seg, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return a.Fallback(seg, "analysis skipped: "+err.Error())
	}

	text := pdftext.Normalize(seg.Text())
	doc = &entity.ExtractedDocument{Segment: seg}

	sel := reference.SelectPrimary(a.refs.FindCandidates(text), a.index)
	doc.InternalRef = sel.InternalRef
	doc.Stem = sel.Stem
	doc.Suffix = sel.Suffix
	doc.Registry = sel.Entry
	doc.ExternalRefs = a.refs.ExternalReferences(text)

	parties := metadata.ExtractParties(text, sel.Entry, a.index.Columns())
	doc.Mandant = parties.Mandant
	doc.Opponent = parties.Opponent

	doc.DocumentDate = metadata.DocumentDate(text)
	doc.Deadline = a.deadlines.Find(text)
	doc.Sender = metadata.DetectSenderType(text, a.rules.Senders)
	doc.Keywords = metadata.ExtractKeywords(text, a.rules.Keywords)

	if err := ctx.Err(); err != nil {
		doc.Warnings = append(doc.Warnings, "analysis interrupted: "+err.Error())
	}

	doc.StaffCode, doc.AssignedBy = a.assigner.Assign(text, sel.Suffix, sel.Entry)
	doc.FileName = export.BuildFilename(doc, a.rules.Placeholders)

	if doc.InternalRef == "" {
		doc.Warnings = append(doc.Warnings, "no internal reference found")
	}

	a.logger.Debug("segment analysed",
		"run_id", common.RunIDFromContext(ctx),
		"segment", seg.Number,
		"pages", len(seg.Pages),
		"internal_ref", doc.InternalRef,
		"registry_match", doc.RegistryMatched(),
		"staff", doc.StaffCode,
		"rule", doc.AssignedBy,
	)
	return doc
}

// Fallback is the document of a segment whose analysis did not complete.
func (a *Analyzer) Fallback(seg entity.Segment, reason string) *entity.ExtractedDocument {
	doc := &entity.ExtractedDocument{
		Segment:    seg,
		Sender:     constants.SenderOther,
		StaffCode:  a.assigner.Default(),
		AssignedBy: assign.RuleDefault,
		Warnings:   []string{reason},
	}
	doc.FileName = export.BuildFilename(doc, a.rules.Placeholders)
	return doc
}
