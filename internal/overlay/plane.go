package overlay

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane selects which world plane the grid's local XY plane is laid onto.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane accepts "XY", "XZ" or "YZ" in any case.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return PlaneXY, nil
	case "XZ":
		return PlaneXZ, nil
	case "YZ":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane %q", s)
}

// basis returns the world directions of the local x, y and z axes.
func (p Plane) basis() (ex, ey, ez r3.Vec, ok bool) {
	switch p {
	case PlaneXY:
		return r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}, true
	case PlaneXZ:
		return r3.Vec{X: 1}, r3.Vec{Z: 1}, r3.Vec{Y: -1}, true
	case PlaneYZ:
		return r3.Vec{Y: 1}, r3.Vec{Z: 1}, r3.Vec{X: 1}, true
	}
	return r3.Vec{}, r3.Vec{}, r3.Vec{}, false
}

// Orient maps a local-plane point into world axes for plane p.
func (p Plane) Orient(v r3.Vec) r3.Vec {
	ex, ey, ez, ok := p.basis()
	if !ok {
		return v
	}
	return r3.Add(r3.Add(r3.Scale(v.X, ex), r3.Scale(v.Y, ey)), r3.Scale(v.Z, ez))
}
