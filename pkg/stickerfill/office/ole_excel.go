package office

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Workbook is an open workbook inside a running Excel instance.
type Workbook struct {
	workbook *ole.IDispatch
}

// OpenWorkbook opens the workbook at path in the attached Excel instance.
// Excel returns the existing handle when the file is already open.
func (a *App) OpenWorkbook(path string) (*Workbook, error) {
	workbooks, err := oleutil.GetProperty(a.dispatch, "Workbooks")
	if err != nil {
		return nil, fmt.Errorf("workbooks collection: %w", err)
	}
	coll := workbooks.ToIDispatch()
	defer coll.Release()

	wb, err := oleutil.CallMethod(coll, "Open", path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{workbook: wb.ToIDispatch()}, nil
}

// Worksheet returns the named sheet of the workbook.
func (w *Workbook) Worksheet(name string) (*OleWorksheet, error) {
	sheet, err := oleutil.GetProperty(w.workbook, "Worksheets", name)
	if err != nil {
		return nil, fmt.Errorf("worksheet %q not found: %w", name, err)
	}
	return &OleWorksheet{sheet: sheet.ToIDispatch()}, nil
}

// Close releases the workbook handle without closing the file in Excel.
func (w *Workbook) Close() {
	if w.workbook != nil {
		w.workbook.Release()
		w.workbook = nil
	}
}

// OleWorksheet reads cells from a live Excel sheet.
type OleWorksheet struct {
	sheet *ole.IDispatch
}

// CellValue implements Worksheet. Errors are returned untouched so the retry
// layer can classify busy rejections.
func (ws *OleWorksheet) CellValue(row, col int) (any, error) {
	cell, err := oleutil.GetProperty(ws.sheet, "Cells", row, col)
	if err != nil {
		return nil, err
	}
	dispatch := cell.ToIDispatch()
	defer dispatch.Release()

	value, err := oleutil.GetProperty(dispatch, "Value")
	if err != nil {
		return nil, err
	}
	return value.Value(), nil
}

// Close releases the sheet handle.
func (ws *OleWorksheet) Close() {
	if ws.sheet != nil {
		ws.sheet.Release()
		ws.sheet = nil
	}
}
