package stickerfill

import (
	"fmt"
	"io"
	"strings"

	"github.com/plcops/stickerfill/pkg/stickerfill/layout"
	"github.com/plcops/stickerfill/pkg/stickerfill/office"
)

// Check reads every sticker row without touching the presentation and prints
// what a fill run would write. It flags stickers with no point data so
// half-filled sheets are caught before anyone opens Office.
func Check(ws office.Worksheet, opts Options, w io.Writer) error {
	empty := 0
	for sticker := 1; sticker <= opts.TotalStickers; sticker++ {
		row := sticker + opts.RowOffset
		slideNum := layout.SlideForSticker(sticker)
		pos := layout.PositionInSlide(sticker)

		points := make([]string, 0, pointsPerSticker)
		for p := 0; p < pointsPerSticker; p++ {
			text, err := readText(ws, row, firstPointColumn+p, opts)
			if err != nil {
				return err
			}
			points = append(points, text)
		}
		amount, err := readText(ws, row, amountColumn, opts)
		if err != nil {
			return err
		}
		cabinet, err := readText(ws, row, cabinetColumn, opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "sticker %02d (slide %d, pos %d): points=[%s] amount=%q cabinet=%q\n",
			sticker, slideNum, pos, strings.Join(points, ", "), amount, cabinet)

		if allEmpty(points) {
			empty++
			fmt.Fprintf(w, "sticker %02d has no point data\n", sticker)
		}
	}
	fmt.Fprintf(w, "%d of %d stickers have no point data\n", empty, opts.TotalStickers)
	return nil
}

func readText(ws office.Worksheet, row, col int, opts Options) (string, error) {
	value, err := office.ReadCell(ws, row, col, opts.Retry)
	if err != nil {
		return "", err
	}
	return office.DisplayText(value), nil
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
