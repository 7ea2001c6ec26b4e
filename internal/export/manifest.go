package export

import (
	"github.com/joseph-ayodele/posteingang/constants"
)

// BuildManifest returns the XLSX listing of one staff group.
func BuildManifest(rows []Row) ([]byte, error) {
	f, err := newWorkbook(constants.ManifestSheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := writeDocumentSheet(f, constants.ManifestSheet, rows, nil); err != nil {
		return nil, err
	}
	return workbookBytes(f)
}
