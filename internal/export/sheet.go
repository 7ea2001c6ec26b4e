package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// Row is one document as it appears in a spreadsheet and in its archive.
type Row struct {
	Doc  *entity.ExtractedDocument
	Name string // archive file name, unique within the batch
}

var documentHeaders = []string{
	"Nr.",
	"Seiten",
	"Dateiname",
	"Aktenzeichen",
	"Im Register",
	"Mandant",
	"Gegner",
	"Datum",
	"Frist",
	"Fristart",
	"Fundstelle",
	"Absender",
	"Stichworte",
	"Fremde Zeichen",
	"Sachbearbeiter",
	"Zuordnung",
}

// newWorkbook returns a file whose only sheet is named sheet.
func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, bold)
}

// writeDocumentSheet writes the header and one line per row. style may
// return 0 for an unstyled line.
func writeDocumentSheet(f *excelize.File, sheet string, rows []Row, style func(*entity.ExtractedDocument) int) error {
	if err := writeHeader(f, sheet, documentHeaders); err != nil {
		return err
	}
	for i, r := range rows {
		line := documentLine(r)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
		if style == nil {
			continue
		}
		if id := style(r.Doc); id != 0 {
			last, _ := excelize.CoordinatesToCellName(len(documentHeaders), i+2)
			if err := f.SetCellStyle(sheet, cell, last, id); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 8)
	_ = f.SetColWidth(sheet, "C", "C", 60)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "G", 28)
	_ = f.SetColWidth(sheet, "H", "J", 14)
	_ = f.SetColWidth(sheet, "K", "K", 40)
	_ = f.SetColWidth(sheet, "L", "N", 24)
	_ = f.SetColWidth(sheet, "O", "P", 16)
	return nil
}

func documentLine(r Row) []any {
	d := r.Doc
	registered := "nein"
	if d.RegistryMatched() {
		registered = "ja"
	}
	var deadline, deadlineLabel, source string
	if d.Deadline != nil {
		deadline = d.Deadline.Date.Format(constants.DateLayoutDE)
		deadlineLabel = d.Deadline.Label
		source = d.Deadline.Source
	}
	return []any{
		d.Segment.Number,
		pageRange(d.Segment),
		r.Name,
		d.InternalRef,
		registered,
		d.Mandant,
		d.Opponent,
		formatDate(d),
		deadline,
		deadlineLabel,
		source,
		string(d.Sender),
		strings.Join(d.Keywords, ", "),
		strings.Join(d.ExternalRefs, ", "),
		d.StaffCode,
		d.AssignedBy,
	}
}

func formatDate(d *entity.ExtractedDocument) string {
	if d.DocumentDate.IsZero() {
		return ""
	}
	return d.DocumentDate.Format(constants.DateLayoutDE)
}

func pageRange(s entity.Segment) string {
	if s.FirstPage() == s.LastPage() {
		return fmt.Sprint(s.FirstPage())
	}
	return fmt.Sprintf("%d-%d", s.FirstPage(), s.LastPage())
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
