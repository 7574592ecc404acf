package stickerfill

import (
	"fmt"
	"io"
)

// Reporter prints run diagnostics as plain text lines.
type Reporter struct {
	w       io.Writer
	set     int
	missing int
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// MissingSlide records a sticker whose slide does not exist in the deck.
func (r *Reporter) MissingSlide(slide, sticker int) {
	r.missing++
	fmt.Fprintf(r.w, "slide %d missing for sticker %02d\n", slide, sticker)
}

// MissingShape records a shape that could not be found on its slide.
func (r *Reporter) MissingShape(name string, slide int) {
	r.missing++
	fmt.Fprintf(r.w, "missing shape: %s on slide %d\n", name, slide)
}

// Set records one shape receiving its cell value.
func (r *Reporter) Set(name string, row, col int, text string) {
	r.set++
	fmt.Fprintf(r.w, "set %s (row %d, col %d) -> %q\n", name, row, col, text)
}

// Summary prints the final counts.
func (r *Reporter) Summary() {
	fmt.Fprintf(r.w, "%d shapes set, %d missing\n", r.set, r.missing)
}

// SetCount returns the number of shapes that received a value.
func (r *Reporter) SetCount() int {
	return r.set
}

// MissingCount returns the number of unresolved shapes and slides.
func (r *Reporter) MissingCount() int {
	return r.missing
}
