// Package segment turns the page stream of a scanned batch into logical documents.
package segment

import (
	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// separatorMark is the only text on an inserted divider sheet. Case-sensitive.
const separatorMark = "T"

// Classify labels one page by its raw extracted text.
func Classify(text string) constants.PageLabel {
	switch textutil.Compact(text) {
	case separatorMark:
		return constants.PageSeparator
	case "":
		return constants.PageBlank
	default:
		return constants.PageContent
	}
}

// ClassifyPages builds labelled pages from per-page texts; texts[0] is page 1.
func ClassifyPages(texts []string) []entity.Page {
	pages := make([]entity.Page, len(texts))
	for i, t := range texts {
		pages[i] = entity.Page{Index: i + 1, Text: t, Label: Classify(t)}
	}
	return pages
}
