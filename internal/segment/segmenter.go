package segment

import (
	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

// Segment groups content pages into documents. Separator pages close the
// open document; blank pages are dropped and never close anything. No empty
// segment is ever emitted.
func Segment(pages []entity.Page) []entity.Segment {
	var (
		out  []entity.Segment
		open entity.Segment
	)
	flush := func() {
		if len(open.Pages) == 0 {
			return
		}
		open.Number = len(out) + 1
		out = append(out, open)
		open = entity.Segment{}
	}

	for _, p := range pages {
		switch p.Label {
		case constants.PageSeparator:
			flush()
		case constants.PageBlank:
			continue
		default:
			open.Pages = append(open.Pages, p.Index)
			open.Texts = append(open.Texts, p.Text)
		}
	}
	flush()
	return out
}

// Stats counts pages per label.
type Stats struct {
	Separators int
	Blanks     int
	Content    int
}

// Count tallies the labels of pages.
func Count(pages []entity.Page) Stats {
	var s Stats
	for _, p := range pages {
		switch p.Label {
		case constants.PageSeparator:
			s.Separators++
		case constants.PageBlank:
			s.Blanks++
		default:
			s.Content++
		}
	}
	return s
}
