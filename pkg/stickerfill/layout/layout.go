// Package layout computes where a sticker's placeholder shapes sit on a slide.
package layout

// The A4 sticker template holds two columns of three stickers per slide.
const (
	StickersPerSlide = 6
	columnsPerSlide  = 2
)

// Base offsets of the sticker grid in points.
var (
	baseLefts = [2]float64{2, 507}
	baseTops  = [3]float64{63, 245, 420}
)

// Size is a fixed width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// Box is an absolute shape rectangle in points.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// SlideForSticker returns the 1-based slide number holding sticker i.
func SlideForSticker(i int) int {
	return (i + StickersPerSlide - 1) / StickersPerSlide
}

// PositionInSlide returns the 1-based position (1..6) of sticker i on its slide.
func PositionInSlide(i int) int {
	return (i-1)%StickersPerSlide + 1
}

// CoordsForPosition returns the rectangle for a shape of the given size at
// position pos (1..6) on a slide.
func CoordsForPosition(pos int, size Size) Box {
	idx := pos - 1
	col := idx % columnsPerSlide
	row := idx / columnsPerSlide
	return Box{
		Left:   baseLefts[col],
		Top:    baseTops[row],
		Width:  size.Width,
		Height: size.Height,
	}
}
