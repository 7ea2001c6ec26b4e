package entity

import "github.com/joseph-ayodele/posteingang/constants"

// Page is one page of the incoming batch. It only lives until segmentation is done.
type Page struct {
	Index int                 `json:"index"` // 1-based position in the source PDF
	Text  string              `json:"text"`
	Label constants.PageLabel `json:"label"`
}
