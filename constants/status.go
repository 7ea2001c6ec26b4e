package constants

// PageLabel is the classification of a single scanned page.
type PageLabel string

// Stable values (these exact strings appear in logs).
const (
	PageSeparator PageLabel = "SEPARATOR" // inserted divider sheet carrying only "T"
	PageBlank     PageLabel = "BLANK"     // no extracted text at all
	PageContent   PageLabel = "CONTENT"
)
