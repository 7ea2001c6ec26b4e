package entity

// RegistryEntry is one normalized row of the case registry.
type RegistryEntry struct {
	Key       string            `json:"key"` // case reference without any whitespace
	StaffCode string            `json:"staff_code"`
	RowNumber int               `json:"row_number"` // 1-based sheet row
	Fields    map[string]string `json:"fields"`     // raw cells by header name
}

// Field returns the raw cell for header name, "" if absent.
func (e *RegistryEntry) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}
