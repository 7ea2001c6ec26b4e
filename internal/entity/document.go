package entity

import (
	"time"

	"github.com/joseph-ayodele/posteingang/constants"
)

// Deadline is a due date found in the document text.
type Deadline struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Source string    `json:"source"` // matched text window
}

// ExtractedDocument is the analysis result for one Segment.
type ExtractedDocument struct {
	Segment Segment `json:"segment"`

	InternalRef  string         `json:"internal_ref"`
	Stem         string         `json:"stem"`
	Suffix       string         `json:"suffix"`
	Registry     *RegistryEntry `json:"registry,omitempty"`
	ExternalRefs []string       `json:"external_refs,omitempty"`

	Mandant  string `json:"mandant,omitempty"`
	Opponent string `json:"opponent,omitempty"`

	DocumentDate time.Time            `json:"document_date"`
	Deadline     *Deadline            `json:"deadline,omitempty"`
	Sender       constants.SenderType `json:"sender"`
	Keywords     []string             `json:"keywords,omitempty"`

	StaffCode  string `json:"staff_code"`
	AssignedBy string `json:"assigned_by"` // name of the assignment rule that fired
	FileName   string `json:"file_name"`

	Warnings []string `json:"warnings,omitempty"`
}

// RegistryMatched reports whether the internal reference was found in the case registry.
func (d *ExtractedDocument) RegistryMatched() bool {
	return d.Registry != nil
}
