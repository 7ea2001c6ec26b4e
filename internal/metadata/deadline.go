package metadata

import (
	"regexp"
	"strconv"

	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
)

// deadlineWindow is the maximum distance between keyword and date, in runes.
const deadlineWindow = 80

// DeadlineFinder looks for the deadline keyword followed closely by a date.
type DeadlineFinder struct {
	re    *regexp.Regexp
	label string
}

func NewDeadlineFinder(r rules.DeadlineRule) *DeadlineFinder {
	return &DeadlineFinder{
		re:    regexp.MustCompile(`(?is)` + regexp.QuoteMeta(r.Keyword) + `.{0,` + strconv.Itoa(deadlineWindow) + `}?\b` + datePattern + `\b`),
		label: r.Label,
	}
}

// Find returns the first deadline whose date parses, or nil. There is no
// fallback: a date without the keyword nearby is not a deadline.
func (f *DeadlineFinder) Find(text string) *entity.Deadline {
	for _, m := range f.re.FindAllStringSubmatch(text, -1) {
		d, ok := parseDate(m[1], m[2], m[3])
		if !ok {
			continue
		}
		return &entity.Deadline{Date: d, Label: f.label, Source: m[0]}
	}
	return nil
}
