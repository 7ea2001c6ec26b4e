package export

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// Urgency is the highlighting class of an overview row.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyWarning
	UrgencyUrgent
)

func (u Urgency) String() string {
	switch u {
	case UrgencyUrgent:
		return "urgent"
	case UrgencyWarning:
		return "warning"
	}
	return "none"
}

// Highlight windows in days from today, both inclusive at the upper end.
const (
	urgentWithin  = 3
	warningWithin = 7
)

// Classify rates a deadline against today. Overdue deadlines are urgent.
func Classify(deadline *entity.Deadline, today time.Time) Urgency {
	if deadline == nil || deadline.Date.IsZero() {
		return UrgencyNone
	}
	days := daysBetween(today, deadline.Date)
	switch {
	case days <= urgentWithin:
		return UrgencyUrgent
	case days <= warningWithin:
		return UrgencyWarning
	}
	return UrgencyNone
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// BuildConsolidatedOverview lists every document in batch order with red
// rows for urgent and yellow rows for approaching deadlines.
func BuildConsolidatedOverview(rows []Row, today time.Time) ([]byte, error) {
	f, err := newWorkbook(constants.OverviewSheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	urgent, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
		Font: &excelize.Font{Color: "9C0006"},
	})
	if err != nil {
		return nil, err
	}
	warning, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFEB9C"}},
		Font: &excelize.Font{Color: "9C5700"},
	})
	if err != nil {
		return nil, err
	}

	style := func(d *entity.ExtractedDocument) int {
		switch Classify(d.Deadline, today) {
		case UrgencyUrgent:
			return urgent
		case UrgencyWarning:
			return warning
		}
		return 0
	}
	if err := writeDocumentSheet(f, constants.OverviewSheet, rows, style); err != nil {
		return nil, err
	}
	return workbookBytes(f)
}
