package registry

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/common"
)

// LoadOptions says where the table sits inside the workbook.
type LoadOptions struct {
	Sheet     string // empty = first sheet
	HeaderRow int    // 1-based; <= 0 means 1
}

// LoadXLSXFile reads the registry table from a workbook on disk.
func LoadXLSXFile(path string, opts LoadOptions) (Table, error) {
	if !constants.IsRegistryExt(filepath.Ext(path)) {
		return Table{}, common.NewAppError("REGISTRY_ERROR", fmt.Sprintf("unsupported registry format %q", filepath.Ext(path)), common.ErrInvalidInput)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()
	return readTable(f, opts)
}

// LoadXLSX reads the registry table from a workbook stream.
func LoadXLSX(r io.Reader, opts LoadOptions) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()
	return readTable(f, opts)
}

func readTable(f *excelize.File, opts LoadOptions) (Table, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, fmt.Errorf("registry workbook has no sheets")
		}
		sheet = sheets[0]
	}
	headerRow := opts.HeaderRow
	if headerRow <= 0 {
		headerRow = 1
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < headerRow {
		// no header at all: every required column is missing
		return Table{FirstRow: headerRow + 1}, nil
	}

	return Table{
		Header:   rows[headerRow-1],
		Rows:     rows[headerRow:],
		FirstRow: headerRow + 1,
	}, nil
}
