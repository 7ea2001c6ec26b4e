package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"
)

// ArchiveFile is one entry of a group archive.
type ArchiveFile struct {
	Name string
	Data []byte
}

// BuildArchive zips files in the given order. Every entry carries the same
// modification time so identical input yields identical bytes.
func BuildArchive(files []ArchiveFile, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, af := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     af.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", af.Name, err)
		}
		if _, err := w.Write(af.Data); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", af.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}
	return buf.Bytes(), nil
}
