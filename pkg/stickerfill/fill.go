package stickerfill

import (
	"fmt"

	"github.com/plcops/stickerfill/pkg/stickerfill/layout"
	"github.com/plcops/stickerfill/pkg/stickerfill/office"
)

// Fill walks every sticker row of the sheet and writes its values into the
// matching placeholder shapes of the deck. Missing slides and shapes are
// reported and skipped; a spreadsheet that stops responding aborts the run.
func Fill(ws office.Worksheet, deck office.Deck, opts Options, rep *Reporter) error {
	for sticker := 1; sticker <= opts.TotalStickers; sticker++ {
		row := sticker + opts.RowOffset
		slideNum := layout.SlideForSticker(sticker)
		if slideNum > deck.SlideCount() {
			rep.MissingSlide(slideNum, sticker)
			continue
		}
		slide, err := deck.Slide(slideNum)
		if err != nil {
			rep.MissingSlide(slideNum, sticker)
			continue
		}
		pos := layout.PositionInSlide(sticker)

		for p := 1; p <= pointsPerSticker; p++ {
			col := firstPointColumn + p - 1
			name := pointShapeName(sticker, p)
			if err := fillShape(ws, slide, name, slideNum, row, col, pos, opts.Point, opts, rep); err != nil {
				return err
			}
		}
		if err := fillShape(ws, slide, amountShapeName(sticker), slideNum, row, amountColumn, pos, opts.Amount, opts, rep); err != nil {
			return err
		}
		if err := fillShape(ws, slide, cabinetShapeName(sticker), slideNum, row, cabinetColumn, pos, opts.Cabinet, opts, rep); err != nil {
			return err
		}
		release(slide)
	}
	rep.Summary()
	return nil
}

// fillShape locates one shape and writes one cell into it. A missing shape is
// reported and skipped; a cell read that exhausts its retries is fatal.
func fillShape(ws office.Worksheet, slide office.Slide, name string, slideNum, row, col, pos int, prof Profile, opts Options, rep *Reporter) error {
	shape, ok := slide.ShapeByName(name)
	if !ok {
		rep.MissingShape(name, slideNum)
		return nil
	}
	defer release(shape)

	value, err := office.ReadCell(ws, row, col, opts.Retry)
	if err != nil {
		return &FillError{Sticker: stickerForRow(row, opts), Shape: name, Err: err}
	}
	text := office.DisplayText(value)
	rep.Set(name, row, col, text)

	// Rotated labels keep their template text.
	if !office.Rotated(shape.Orientation()) {
		// Text, geometry and font are cosmetic; failures are absorbed so one
		// stubborn shape cannot stop the run.
		_ = shape.SetText(text)
	}

	if opts.ForceCoords {
		box := layout.CoordsForPosition(pos, prof.Size)
		box.Width += prof.WidthPad
		_ = shape.SetBox(box)
	}
	if prof.FontAlways || opts.ForceCoords {
		_ = shape.SetFontSize(prof.FontSize)
	}
	return nil
}

// release frees the automation handle behind a slide or shape, when there is
// one. Fakes used in tests have nothing to free.
func release(v any) {
	if r, ok := v.(interface{ Release() }); ok {
		r.Release()
	}
}

func stickerForRow(row int, opts Options) int {
	return row - opts.RowOffset
}

func pointShapeName(sticker, point int) string {
	return fmt.Sprintf("Point %02d.%02d", sticker, point)
}

func amountShapeName(sticker int) string {
	return fmt.Sprintf("LOTO Amount %02d", sticker)
}

func cabinetShapeName(sticker int) string {
	return fmt.Sprintf("Cabinet %02d", sticker)
}
