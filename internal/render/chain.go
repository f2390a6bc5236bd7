package render

import (
	"math"

	"github.com/banshee-data/polargrid/internal/polargrid"
	"gonum.org/v1/gonum/spatial/r3"
)

// joinTolerance is how close two endpoints must be to continue a polyline.
const joinTolerance = 1e-9

// Polyline is a run of connected points sharing one colour.
type Polyline struct {
	Points []r3.Vec
	Color  polargrid.Color
}

// Chain merges consecutive segments whose endpoints meet into polylines.
// A ring arc of n one-degree segments becomes one polyline of n+1 points;
// wedge lines stay separate.
func Chain(lines polargrid.LineList) []Polyline {
	var out []Polyline
	for i := 0; i < lines.SegmentCount(); i++ {
		a, b := lines.Segment(i)
		if n := len(out); n > 0 {
			last := &out[n-1]
			tail := last.Points[len(last.Points)-1]
			if last.Color == a.Color && a.Color == b.Color && r3.Norm(r3.Sub(tail, a.Position)) <= joinTolerance {
				last.Points = append(last.Points, b.Position)
				continue
			}
		}
		out = append(out, Polyline{
			Points: []r3.Vec{a.Position, b.Position},
			Color:  a.Color,
		})
	}
	return out
}

// Extent returns a symmetric half-width covering every vertex in x and y,
// padded by 5% so edge lines stay visible. An empty or collapsed list
// yields 1.
func Extent(lines polargrid.LineList) float64 {
	maxAbs := 0.0
	for _, v := range lines {
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(v.Position.X), math.Abs(v.Position.Y)))
	}
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	return pad
}
