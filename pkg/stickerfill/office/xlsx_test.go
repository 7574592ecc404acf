package office

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFixtureWorkbook(t *testing.T, sheet string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue(sheet, "I3", "Point A")
	f.SetCellValue(sheet, "J3", "  Point B  ")
	f.SetCellValue(sheet, "M3", 4)
	f.SetCellValue(sheet, "N3", "CAB-01")

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestXLSXWorksheetCellValue(t *testing.T) {
	path := writeFixtureWorkbook(t, "Info_Tags")

	ws, err := OpenXLSXWorksheet(path, "Info_Tags")
	if err != nil {
		t.Fatalf("OpenXLSXWorksheet failed: %v", err)
	}
	defer ws.Close()

	v, err := ws.CellValue(3, 9)
	if err != nil {
		t.Fatalf("CellValue failed: %v", err)
	}
	if v != "Point A" {
		t.Errorf("CellValue(3, 9) = %v, expected %q", v, "Point A")
	}

	// Empty cells are nil, like the live reader.
	v, err = ws.CellValue(3, 11)
	if err != nil {
		t.Fatalf("CellValue failed: %v", err)
	}
	if v != nil {
		t.Errorf("CellValue(3, 11) = %v, expected nil", v)
	}

	v, err = ws.CellValue(3, 14)
	if err != nil {
		t.Fatalf("CellValue failed: %v", err)
	}
	if v != "CAB-01" {
		t.Errorf("CellValue(3, 14) = %v, expected %q", v, "CAB-01")
	}
}

func TestOpenXLSXWorksheetMissingSheet(t *testing.T) {
	path := writeFixtureWorkbook(t, "Info_Tags")

	if _, err := OpenXLSXWorksheet(path, "NoSuchSheet"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestOpenXLSXWorksheetMissingFile(t *testing.T) {
	if _, err := OpenXLSXWorksheet(filepath.Join(t.TempDir(), "missing.xlsx"), "Sheet1"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
