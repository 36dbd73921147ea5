package output

import (
	"math"
	"strings"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// Bar draws a percentage as a fixed-width text bar. Values are clamped to
// [0, 100] for drawing only.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(pct) {
		pct = 0
	}
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}
