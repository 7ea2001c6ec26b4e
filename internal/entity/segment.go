package entity

import "strings"

// Segment is one logical document cut out of the batch.
// Pages and Texts are parallel slices in original page order.
type Segment struct {
	Number int      `json:"number"` // 1-based order of emission
	Pages  []int    `json:"pages"`
	Texts  []string `json:"-"`
}

// FirstPage returns the original number of the first page, 0 for an empty segment.
func (s Segment) FirstPage() int {
	if len(s.Pages) == 0 {
		return 0
	}
	return s.Pages[0]
}

// LastPage returns the original number of the last page, 0 for an empty segment.
func (s Segment) LastPage() int {
	if len(s.Pages) == 0 {
		return 0
	}
	return s.Pages[len(s.Pages)-1]
}

// Text joins the page texts with a form feed, the same page break pdftotext emits.
func (s Segment) Text() string {
	return strings.Join(s.Texts, "\n\f\n")
}
