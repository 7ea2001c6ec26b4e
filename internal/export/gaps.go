package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// GapReferences returns the distinct internal references that were found in
// a document but matched no registry row, in batch order.
func GapReferences(docs []*entity.ExtractedDocument) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, d := range docs {
		if d.InternalRef == "" || d.RegistryMatched() {
			continue
		}
		if _, ok := seen[d.InternalRef]; ok {
			continue
		}
		seen[d.InternalRef] = struct{}{}
		out = append(out, d.InternalRef)
	}
	return out
}

// BuildRegistryGapReport returns nil, nil when every detected reference is
// registered.
func BuildRegistryGapReport(docs []*entity.ExtractedDocument) ([]byte, error) {
	refs := GapReferences(docs)
	if len(refs) == 0 {
		return nil, nil
	}

	first := make(map[string]*entity.ExtractedDocument, len(refs))
	for _, d := range docs {
		if _, ok := first[d.InternalRef]; !ok && !d.RegistryMatched() {
			first[d.InternalRef] = d
		}
	}

	f, err := newWorkbook(constants.GapReportSheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := constants.GapReportSheet
	if err := writeHeader(f, sheet, []string{"Aktenzeichen", "Erstes Dokument", "Seiten", "Sachbearbeiter"}); err != nil {
		return nil, err
	}
	for i, ref := range refs {
		d := first[ref]
		line := []any{ref, d.Segment.Number, pageRange(d.Segment), d.StaffCode}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "D", 16)
	return workbookBytes(f)
}
