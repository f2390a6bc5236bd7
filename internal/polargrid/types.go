package polargrid

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Color is a straight (non-premultiplied) RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Valid reports whether every component lies in [0,1].
func (c Color) Valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Translucent reports whether the colour needs alpha blending.
func (c Color) Translucent() bool { return c.A < 1 }

// Vertex is one end of a line segment in the grid's local plane.
type Vertex struct {
	Position r3.Vec
	Color    Color
}

// LineList is a line-list primitive: vertices 2i and 2i+1 form segment i.
// Consecutive segments are not implicitly connected.
type LineList []Vertex

// SegmentCount returns the number of two-point segments in the list.
func (l LineList) SegmentCount() int { return len(l) / 2 }

// Segment returns both ends of segment i.
func (l LineList) Segment(i int) (Vertex, Vertex) {
	return l[2*i], l[2*i+1]
}

// Parameters is the full shape description of a grid.
type Parameters struct {
	MinRadius      float64 // inner radius, >= 0
	RadiusStep     float64 // spacing between rings, >= 0
	RingCount      int     // number of rings, >= 0
	SectorsEnabled bool
	MinAngleDeg    int // [-180,180], always < MaxAngleDeg
	MaxAngleDeg    int // [-180,180]
	SectorCount    int // >= 1
	Invert         bool
	Color          Color
}

// DefaultParameters mirrors the stock display properties: five unit rings
// from the origin in translucent gray, sectors off.
func DefaultParameters() Parameters {
	return Parameters{
		MinRadius:      0,
		RadiusStep:     1,
		RingCount:      5,
		SectorsEnabled: false,
		MinAngleDeg:    -90,
		MaxAngleDeg:    90,
		SectorCount:    6,
		Invert:         false,
		Color:          Color{R: 160.0 / 255, G: 160.0 / 255, B: 164.0 / 255, A: 0.5},
	}
}

// Span returns the active [start,end) sweep in degrees.
func (p Parameters) Span() (start, end int) {
	switch {
	case !p.SectorsEnabled:
		return 0, 360
	case p.Invert:
		return p.MaxAngleDeg, p.MinAngleDeg + 360
	default:
		return p.MinAngleDeg, p.MaxAngleDeg
	}
}

// Material describes how a renderer should draw a LineList.
type Material struct {
	Lit        bool
	AlphaBlend bool
}
