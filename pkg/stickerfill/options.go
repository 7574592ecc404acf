// Package stickerfill copies sticker data from the tracking workbook into
// named placeholder shapes across the slides of the information sticker
// presentation.
package stickerfill

import (
	"github.com/plcops/stickerfill/pkg/stickerfill/layout"
	"github.com/plcops/stickerfill/pkg/stickerfill/office"
)

// Locations of the deployed source files. The tool ships alongside the files
// it edits, so these are constants rather than flags.
const (
	WorkbookPath     = `C:\LOTO PLACARDS FC08\LOTO Updating Tool FCO8.xlsm`
	PresentationPath = `C:\LOTO PLACARDS FC08\PLC30 - Inbound 1\03. LOTO Information Sticker\PLC30 LOTO Information 114 Stickers_Template.pptx`
	SheetName        = "Info_Tags_PLC30_FCO8"
)

// Column map of the source sheet: four point columns, then amount and cabinet.
const (
	firstPointColumn = 9 // columns I..L
	pointsPerSticker = 4
	amountColumn     = 13 // column M
	cabinetColumn    = 14 // column N
)

// Profile bundles the size and font applied to one shape category.
type Profile struct {
	Size     layout.Size
	FontSize float64
	// FontAlways applies the font size even when coordinates are not forced.
	FontAlways bool
	// WidthPad widens the computed box to keep text from wrapping.
	WidthPad float64
}

// Options configures a fill run.
type Options struct {
	TotalStickers int
	// RowOffset is added to the sticker index to get the sheet row. The
	// sheet has two header rows, so data starts at row 3.
	RowOffset int
	// ForceCoords repositions and resizes every shape from the layout tables.
	ForceCoords bool
	Retry       office.RetryPolicy

	Point   Profile
	Amount  Profile
	Cabinet Profile
}

// DefaultOptions returns the deployed configuration.
func DefaultOptions() Options {
	return Options{
		TotalStickers: 120,
		RowOffset:     2,
		ForceCoords:   false,
		Retry:         office.DefaultRetryPolicy(),
		Point: Profile{
			Size:     layout.Size{Width: 450.43, Height: 34.02},
			FontSize: 20,
		},
		Amount: Profile{
			Size:     layout.Size{Width: 32.03, Height: 41.10},
			FontSize: 22,
		},
		Cabinet: Profile{
			Size:       layout.Size{Width: 134.12, Height: 21.83},
			FontSize:   10,
			FontAlways: true,
			WidthPad:   40,
		},
	}
}
