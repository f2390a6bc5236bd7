// Package overlay hosts a polar grid Builder the way a visualisation tool
// would: it maps display properties (colour plus alpha, plane, origin
// offset, frame visibility) onto builder setters and places the builder's
// local geometry in world space.
package overlay

import (
	"fmt"

	"github.com/banshee-data/polargrid/internal/config"
	"github.com/banshee-data/polargrid/internal/monitoring"
	"github.com/banshee-data/polargrid/internal/polargrid"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Overlay is one polar grid instance placed in a scene.
type Overlay struct {
	ID uuid.UUID

	grid    *polargrid.Builder
	plane   Plane
	offset  r3.Vec
	visible bool
}

// New returns a visible overlay in the XY plane with default grid parameters.
func New() *Overlay {
	return &Overlay{
		ID:      uuid.New(),
		grid:    polargrid.NewBuilder(),
		plane:   PlaneXY,
		visible: true,
	}
}

// Name is a short label for logs, e.g. "PolarGrid-1b4e28ba".
func (o *Overlay) Name() string {
	return "PolarGrid-" + o.ID.String()[:8]
}

// Grid exposes the builder for direct setter calls.
func (o *Overlay) Grid() *polargrid.Builder { return o.grid }

// Plane returns the current orientation.
func (o *Overlay) Plane() Plane { return o.plane }

// Offset returns the world-space origin offset.
func (o *Overlay) Offset() r3.Vec { return o.offset }

// SetPlane changes the orientation. Geometry is not rebuilt; only World
// output changes.
func (o *Overlay) SetPlane(p Plane) error {
	if _, _, _, ok := p.basis(); !ok {
		monitoring.Logf("[%s] invalid plane index %d", o.Name(), int(p))
		return fmt.Errorf("invalid plane index %d", int(p))
	}
	o.plane = p
	return nil
}

// SetOffset moves the grid origin in world space.
func (o *Overlay) SetOffset(v r3.Vec) { o.offset = v }

// SetColor combines an RGB colour property with a separate alpha property.
func (o *Overlay) SetColor(rgb [3]float64, alpha float64) error {
	return o.grid.SetColor(polargrid.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha})
}

// SetFrameResolved records whether the host could resolve the grid's
// reference frame. Unresolved frames hide the grid.
func (o *Overlay) SetFrameResolved(ok bool) {
	if ok != o.visible {
		if ok {
			monitoring.Logf("[%s] reference frame resolved, showing grid", o.Name())
		} else {
			monitoring.Logf("[%s] reference frame missing, hiding grid", o.Name())
		}
	}
	o.visible = ok
}

// Visible reports whether the grid should be drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Material forwards the builder's draw hint.
func (o *Overlay) Material() polargrid.Material { return o.grid.Material() }

// Lines returns the builder's local-plane geometry.
func (o *Overlay) Lines() polargrid.LineList { return o.grid.Lines() }

// World returns a new list with every vertex oriented into the selected
// plane and shifted by the offset. It returns nil while the grid is hidden.
func (o *Overlay) World() polargrid.LineList {
	if !o.visible {
		return nil
	}
	local := o.grid.Lines()
	out := make(polargrid.LineList, len(local))
	for i, v := range local {
		out[i] = polargrid.Vertex{
			Position: r3.Add(o.plane.Orient(v.Position), o.offset),
			Color:    v.Color,
		}
	}
	return out
}

// ApplyConfig pushes every config value through the builder setters, then
// sets plane and offset. The config is validated first so a bad file leaves
// the overlay untouched.
func (o *Overlay) ApplyConfig(cfg *config.GridConfig) error {
	if cfg == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	plane, err := ParsePlane(cfg.GetPlane())
	if err != nil {
		return err
	}

	g := o.grid
	steps := []struct {
		name  string
		apply func() error
	}{
		{"color", func() error { return o.SetColor(cfg.GetColor(), cfg.GetAlpha()) }},
		{"min_radius", func() error { return g.SetMinRadius(cfg.GetMinRadius()) }},
		{"radius_step", func() error { return g.SetRadiusStep(cfg.GetRadiusStep()) }},
		{"ring_count", func() error { return g.SetRingCount(cfg.GetRingCount()) }},
		{"sectors", func() error { g.SetSectorsEnabled(cfg.GetSectors()); return nil }},
		{"angles", func() error { return g.SetSectorBounds(cfg.GetMinAngle(), cfg.GetMaxAngle()) }},
		{"sector_count", func() error { return g.SetSectorCount(cfg.GetSectorCount()) }},
		{"invert", func() error { g.SetInvert(cfg.GetInvert()); return nil }},
		{"plane", func() error { return o.SetPlane(plane) }},
	}
	for _, s := range steps {
		if err := s.apply(); err != nil {
			return fmt.Errorf("apply %s: %w", s.name, err)
		}
	}

	off := cfg.GetOffset()
	o.SetOffset(r3.Vec{X: off[0], Y: off[1], Z: off[2]})

	monitoring.Logf("[%s] applied config: %d segments, plane=%s", o.Name(), g.Lines().SegmentCount(), o.plane)
	return nil
}
