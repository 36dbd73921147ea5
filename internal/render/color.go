package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const noDataColor = "#e5e5e5"

// namedColors covers the CSS names the chart specs use.
var namedColors = map[string]string{
	"black":     "000000",
	"white":     "ffffff",
	"red":       "ff0000",
	"green":     "008000",
	"darkblue":  "00008b",
	"lightgrey": "d3d3d3",
	"lightgray": "d3d3d3",
}

// Color resolves a CSS colour name or #rgb / #rrggbb hex string. Anything
// else resolves to mid grey.
func Color(c string) drawing.Color {
	c = strings.ToLower(strings.TrimSpace(c))
	if hex, ok := namedColors[c]; ok {
		return drawing.ColorFromHex(hex)
	}
	hex := strings.TrimPrefix(c, "#")
	if (len(hex) != 3 && len(hex) != 6) || !isHex(hex) {
		return drawing.ColorFromHex("808080")
	}
	return drawing.ColorFromHex(hex)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func fill(c string) chart.Style {
	col := Color(c)
	return chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1}
}
