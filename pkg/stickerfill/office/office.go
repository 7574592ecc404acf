// Package office drives the spreadsheet and presentation applications through
// their automation interfaces.
package office

import "github.com/plcops/stickerfill/pkg/stickerfill/layout"

// Text frame orientation codes. Values 3 and 4 mark vertically rotated text.
const (
	OrientationVertical        = 3
	OrientationVerticalFarEast = 4
)

// Worksheet is a read-only grid of cells addressed by 1-based (row, column).
type Worksheet interface {
	// CellValue returns the raw value of a cell, or nil for an empty cell.
	CellValue(row, col int) (any, error)
}

// Deck is an open presentation.
type Deck interface {
	// SlideCount returns the number of slides, or 0 if it cannot be read.
	SlideCount() int
	Slide(n int) (Slide, error)
}

// Slide holds named placeholder shapes.
type Slide interface {
	// ShapeByName returns the shape with the given name, or ok=false when the
	// slide has no such shape. Lookup failures are never propagated.
	ShapeByName(name string) (Shape, bool)
}

// Shape is a placeholder text box on a slide.
type Shape interface {
	// Orientation returns the text frame orientation code, or 0 when it
	// cannot be read.
	Orientation() int
	SetText(text string) error
	SetBox(box layout.Box) error
	SetFontSize(points float64) error
}

// Rotated reports whether an orientation code marks vertically rotated text.
// Rotated labels keep their template text and must never be overwritten.
func Rotated(orientation int) bool {
	return orientation == OrientationVertical || orientation == OrientationVerticalFarEast
}
