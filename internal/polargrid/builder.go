package polargrid

import (
	"fmt"
	"math"

	"github.com/banshee-data/polargrid/internal/monitoring"
	"github.com/banshee-data/polargrid/internal/units"
	"gonum.org/v1/gonum/spatial/r3"
)

// zeroRadiusEpsilon is the threshold below which MinRadius counts as unset.
// An unset inner radius pushes the first ring out by one RadiusStep so no
// ring collapses onto the origin.
const zeroRadiusEpsilon = 1e-6

// Builder holds grid Parameters and the LineList generated from them.
type Builder struct {
	params Parameters
	lines  LineList
}

// NewBuilder returns a Builder with DefaultParameters, already built.
func NewBuilder() *Builder {
	b := &Builder{params: DefaultParameters()}
	b.rebuild()
	return b
}

// Parameters returns a copy of the current parameters.
func (b *Builder) Parameters() Parameters { return b.params }

// Lines returns the most recently built list. A later rebuild replaces the
// list rather than writing into it, so the returned slice stays stable.
func (b *Builder) Lines() LineList { return b.lines }

// Material returns the draw hint for the current colour.
func (b *Builder) Material() Material {
	return Material{Lit: false, AlphaBlend: b.params.Color.Translucent()}
}

// SetMinRadius sets the inner radius of the grid.
func (b *Builder) SetMinRadius(r float64) error {
	if r < 0 || math.IsNaN(r) {
		return fmt.Errorf("%w: min radius %v", ErrInvalidParameter, r)
	}
	b.params.MinRadius = r
	b.rebuild()
	return nil
}

// SetRadiusStep sets the spacing between consecutive rings.
func (b *Builder) SetRadiusStep(step float64) error {
	if step < 0 || math.IsNaN(step) {
		return fmt.Errorf("%w: radius step %v", ErrInvalidParameter, step)
	}
	b.params.RadiusStep = step
	b.rebuild()
	return nil
}

// SetRingCount sets the number of rings.
func (b *Builder) SetRingCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: ring count %d", ErrInvalidParameter, n)
	}
	b.params.RingCount = n
	b.rebuild()
	return nil
}

// SetSectorsEnabled switches between a full circle and a bounded sector.
func (b *Builder) SetSectorsEnabled(on bool) {
	b.params.SectorsEnabled = on
	b.rebuild()
}

// SetInvert selects the complement of the [min,max] sector.
func (b *Builder) SetInvert(on bool) {
	b.params.Invert = on
	b.rebuild()
}

// SetMinAngle sets the lower sector bound in degrees. A value that is not
// below the current maximum is rejected with ErrInvalidRange.
func (b *Builder) SetMinAngle(deg int) error {
	if err := checkBearing("min angle", deg); err != nil {
		return err
	}
	if deg >= b.params.MaxAngleDeg {
		return b.rejectRange(deg, b.params.MaxAngleDeg)
	}
	b.params.MinAngleDeg = deg
	b.rebuild()
	return nil
}

// SetMaxAngle sets the upper sector bound in degrees. A value that is not
// above the current minimum is rejected with ErrInvalidRange.
func (b *Builder) SetMaxAngle(deg int) error {
	if err := checkBearing("max angle", deg); err != nil {
		return err
	}
	if deg <= b.params.MinAngleDeg {
		return b.rejectRange(b.params.MinAngleDeg, deg)
	}
	b.params.MaxAngleDeg = deg
	b.rebuild()
	return nil
}

// SetSectorBounds replaces both sector bounds with a single rebuild.
func (b *Builder) SetSectorBounds(minDeg, maxDeg int) error {
	if err := checkBearing("min angle", minDeg); err != nil {
		return err
	}
	if err := checkBearing("max angle", maxDeg); err != nil {
		return err
	}
	if minDeg >= maxDeg {
		return b.rejectRange(minDeg, maxDeg)
	}
	b.params.MinAngleDeg = minDeg
	b.params.MaxAngleDeg = maxDeg
	b.rebuild()
	return nil
}

// SetSectorCount sets how many sectors the active span is split into.
func (b *Builder) SetSectorCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidSectorCount, n)
	}
	b.params.SectorCount = n
	b.rebuild()
	return nil
}

// SetColor sets the colour applied to every vertex.
func (b *Builder) SetColor(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: color %+v", ErrInvalidParameter, c)
	}
	b.params.Color = c
	b.rebuild()
	return nil
}

func (b *Builder) rejectRange(minDeg, maxDeg int) error {
	monitoring.Warnf("rejected sector bounds min=%d max=%d, keeping min=%d max=%d",
		minDeg, maxDeg, b.params.MinAngleDeg, b.params.MaxAngleDeg)
	return fmt.Errorf("%w: min %d must be below max %d", ErrInvalidRange, minDeg, maxDeg)
}

func checkBearing(name string, deg int) error {
	if !units.ValidBearing(deg) {
		return fmt.Errorf("%w: %s %d outside [%d,%d]", ErrInvalidParameter, name, deg, units.MinBearing, units.MaxBearing)
	}
	return nil
}

func (b *Builder) rebuild() {
	b.lines = Build(b.params)
}

// Build generates the line list for p. It does not validate p; parameters
// that came through a Builder are always valid.
func Build(p Parameters) LineList {
	start, end := p.Span()
	span := end - start
	if span < 0 {
		span = 0
	}

	ringVerts := 0
	if p.RingCount > 0 {
		ringVerts = p.RingCount * span * 2
	}
	wedgeVerts := 0
	if p.SectorsEnabled {
		wedgeVerts = (p.SectorCount + 1) * 2
	}
	out := make(LineList, 0, ringVerts+wedgeVerts)

	offset := 0.0
	if math.Abs(p.MinRadius) < zeroRadiusEpsilon {
		offset = 1
	}

	maxRadius := 0.0
	for i := 0; i < p.RingCount; i++ {
		radius := p.MinRadius + (float64(i)+offset)*p.RadiusStep
		if i == p.RingCount-1 {
			maxRadius = radius
		}
		for j := start; j < end; j++ {
			for k := 0; k < 2; k++ {
				out = append(out, p.vertex(radius, units.DegToRad(float64(j+k))))
			}
		}
	}

	if p.SectorsEnabled && p.SectorCount > 0 {
		step := float64(span) / float64(p.SectorCount)
		for i := 0; i <= p.SectorCount; i++ {
			theta := units.DegToRad(float64(start) + float64(i)*step)
			out = append(out, p.vertex(p.MinRadius, theta), p.vertex(maxRadius, theta))
		}
	}

	return out
}

func (p Parameters) vertex(radius, theta float64) Vertex {
	return Vertex{
		Position: r3.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)},
		Color:    p.Color,
	}
}
