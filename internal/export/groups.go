package export

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// ContentSource yields the PDF bytes of one segment.
type ContentSource interface {
	Content(seg entity.Segment) ([]byte, error)
}

// Group is the deliverable of one staff code.
type Group struct {
	Staff    string
	Rows     []Row
	Archive  []byte
	Manifest []byte
}

// Aggregator reduces analysed documents into the batch deliverables.
type Aggregator struct {
	source ContentSource
	date   time.Time
	logger *slog.Logger
}

// NewAggregator returns an aggregator for the intake date. source may be nil,
// in which case archives carry each document's extracted text instead.
func NewAggregator(source ContentSource, date time.Time, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{source: source, date: date, logger: logger}
}

// Rows pairs every document with its unique archive name, keeping order.
func Rows(docs []*entity.ExtractedDocument) []Row {
	names := uniqueNames(docs)
	out := make([]Row, len(docs))
	for i, d := range docs {
		out[i] = Row{Doc: d, Name: names[i]}
	}
	return out
}

// GroupByCaseworker partitions rows by staff code. Groups are sorted by code;
// rows keep their batch order inside a group.
func (a *Aggregator) GroupByCaseworker(rows []Row) ([]Group, error) {
	byStaff := make(map[string][]Row)
	for _, r := range rows {
		byStaff[r.Doc.StaffCode] = append(byStaff[r.Doc.StaffCode], r)
	}
	codes := make([]string, 0, len(byStaff))
	for c := range byStaff {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	groups := make([]Group, 0, len(codes))
	for _, code := range codes {
		g, err := a.buildGroup(code, byStaff[code])
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", code, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (a *Aggregator) buildGroup(staff string, rows []Row) (Group, error) {
	manifest, err := BuildManifest(rows)
	if err != nil {
		return Group{}, err
	}

	files := make([]ArchiveFile, 0, len(rows)+1)
	for _, r := range rows {
		files = append(files, a.archiveFile(r))
	}
	files = append(files, ArchiveFile{Name: ManifestName(a.date, staff), Data: manifest})

	archive, err := BuildArchive(files, a.date)
	if err != nil {
		return Group{}, err
	}
	a.logger.Info("export.group.ok", "staff", staff, "documents", len(rows), "archive_bytes", len(archive))
	return Group{Staff: staff, Rows: rows, Archive: archive, Manifest: manifest}, nil
}

// archiveFile falls back to the extracted text when the PDF pages cannot be cut.
func (a *Aggregator) archiveFile(r Row) ArchiveFile {
	if a.source != nil {
		data, err := a.source.Content(r.Doc.Segment)
		if err == nil {
			return ArchiveFile{Name: r.Name, Data: data}
		}
		a.logger.Warn("export.content.fallback",
			"segment", r.Doc.Segment.Number,
			"file", r.Name,
			"error", err,
		)
	}
	return ArchiveFile{
		Name: strings.TrimSuffix(r.Name, ".pdf") + ".txt",
		Data: []byte(r.Doc.Segment.Text()),
	}
}

// Output is everything one batch produces.
type Output struct {
	Groups    []Group
	Overview  []byte
	GapReport []byte // nil when every reference is registered
	GapRefs   []string
}

// Aggregate runs the complete reduce step.
func (a *Aggregator) Aggregate(docs []*entity.ExtractedDocument) (*Output, error) {
	rows := Rows(docs)

	groups, err := a.GroupByCaseworker(rows)
	if err != nil {
		return nil, err
	}
	overview, err := BuildConsolidatedOverview(rows, a.date)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	gaps, err := BuildRegistryGapReport(docs)
	if err != nil {
		return nil, fmt.Errorf("gap report: %w", err)
	}
	return &Output{
		Groups:    groups,
		Overview:  overview,
		GapReport: gaps,
		GapRefs:   GapReferences(docs),
	}, nil
}

// Artifact names, all prefixed with the intake date. Staff codes come from
// registry cells and are reduced to letters and digits before use.

func ArchiveName(date time.Time, staff string) string {
	return date.Format(constants.DateLayout) + "_" + staffPart(staff) + ".zip"
}

func ManifestName(date time.Time, staff string) string {
	return date.Format(constants.DateLayout) + "_" + staffPart(staff) + "_Liste.xlsx"
}

func OverviewName(date time.Time) string {
	return date.Format(constants.DateLayout) + "_Uebersicht.xlsx"
}

func GapReportName(date time.Time) string {
	return date.Format(constants.DateLayout) + "_Registerluecken.xlsx"
}

func staffPart(staff string) string {
	if s := Slug(staff, 0); s != "" {
		return s
	}
	return "ohneKuerzel"
}
