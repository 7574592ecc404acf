package office

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXWorksheet reads cells from a workbook file on disk, without a running
// spreadsheet application. It implements Worksheet for offline checks.
type XLSXWorksheet struct {
	file  *excelize.File
	sheet string
}

// OpenXLSXWorksheet opens the named sheet of the workbook at path.
func OpenXLSXWorksheet(path, sheet string) (*XLSXWorksheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		f.Close()
		return nil, fmt.Errorf("worksheet %q not found in %s", sheet, path)
	}
	return &XLSXWorksheet{file: f, sheet: sheet}, nil
}

// CellValue implements Worksheet. Empty cells are reported as nil, matching
// the live reader.
func (ws *XLSXWorksheet) CellValue(row, col int) (any, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	value, err := ws.file.GetCellValue(ws.sheet, cell)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	return value, nil
}

// Close closes the underlying workbook file.
func (ws *XLSXWorksheet) Close() error {
	return ws.file.Close()
}
