package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/banshee-data/polargrid/internal/polargrid"
)

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// NRGBA converts a grid colour to an 8-bit non-premultiplied colour.
func NRGBA(c polargrid.Color) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// CSS formats a grid colour as a CSS rgba() value.
func CSS(c polargrid.Color) string {
	n := NRGBA(c)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, c.A)
}
