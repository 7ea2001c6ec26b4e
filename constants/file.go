package constants

import "strings"

// RegistryExtensions holds the spreadsheet formats accepted for the case registry.
var RegistryExtensions = map[string]struct{}{
	"xlsx": {},
	"xlsm": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsRegistryExt reports whether ext (with or without dot) is a supported registry format.
func IsRegistryExt(ext string) bool {
	_, ok := RegistryExtensions[NormalizeExt(ext)]
	return ok
}

const (
	DateLayout     = "2006-01-02"
	DateLayoutDE   = "02.01.2006"
	ManifestSheet  = "Posteingang"
	OverviewSheet  = "Übersicht"
	GapReportSheet = "Registerlücken"
)
