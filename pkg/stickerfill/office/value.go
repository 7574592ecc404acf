package office

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DisplayText converts a raw cell value into the text written to a shape.
// Empty cells and the sheet's textual null markers become "", integral
// numbers lose their decimal point ("1.0" -> "1"), and other numbers are
// rounded to two decimals.
func DisplayText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "nan" || s == "None" {
			return ""
		}
		return s
	case float64:
		return formatNumber(t)
	case float32:
		return formatNumber(float64(t))
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	rounded := math.Round(f*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
