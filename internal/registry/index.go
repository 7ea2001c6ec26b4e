// Package registry indexes the firm's case registry by normalized case reference.
package registry

import (
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/posteingang/internal/common"
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// Table is a header row plus data rows, as read from a spreadsheet.
type Table struct {
	Header []string
	Rows   [][]string
	// FirstRow is the 1-based sheet row of Rows[0]; used for log messages.
	FirstRow int
}

// Index is a read-only lookup from normalized case reference to registry row.
// It is safe for concurrent use once built.
type Index struct {
	entries map[string]*entity.RegistryEntry
	columns rules.RegistryColumns
}

// NormalizeKey strips every whitespace rune (NBSP included) from a case reference.
func NormalizeKey(ref string) string {
	return textutil.Compact(ref)
}

// Build indexes t. It fails with a fatal precondition naming every missing
// required column before looking at any data row. Rows with an empty case
// reference are skipped; for duplicate keys the first row wins.
func Build(t Table, cols rules.RegistryColumns, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		h = strings.TrimSpace(strings.ReplaceAll(h, "\u00a0", " "))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	var missing []string
	for _, c := range cols.Required() {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, common.NewMissingColumnsError(missing)
	}

	idx := &Index{entries: make(map[string]*entity.RegistryEntry, len(t.Rows)), columns: cols}
	refCol, staffCol := pos[cols.CaseReference], pos[cols.StaffCode]

	skipped, dups := 0, 0
	for i, row := range t.Rows {
		key := NormalizeKey(cell(row, refCol))
		if key == "" {
			skipped++
			continue
		}
		if _, exists := idx.entries[key]; exists {
			dups++
			logger.Warn("duplicate case reference in registry, keeping first row", "key", key, "row", t.FirstRow+i)
			continue
		}
		fields := make(map[string]string, len(pos))
		for name, c := range pos {
			fields[name] = strings.TrimSpace(cell(row, c))
		}
		idx.entries[key] = &entity.RegistryEntry{
			Key:       key,
			StaffCode: NormalizeKey(cell(row, staffCol)),
			RowNumber: t.FirstRow + i,
			Fields:    fields,
		}
	}

	logger.Info("registry.index.ok", "entries", len(idx.entries), "skipped_rows", skipped, "duplicates", dups)
	return idx, nil
}

// Lookup returns the entry for ref (normalized first), or nil.
func (x *Index) Lookup(ref string) *entity.RegistryEntry {
	if x == nil {
		return nil
	}
	return x.entries[NormalizeKey(ref)]
}

// Len returns the number of indexed case references.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Columns returns the header names the index was built with.
func (x *Index) Columns() rules.RegistryColumns {
	return x.columns
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
