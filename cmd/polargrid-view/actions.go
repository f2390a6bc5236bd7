package main

import (
	"github.com/banshee-data/polargrid/internal/polargrid"
)

type action int

const (
	actToggleSectors action = iota
	actToggleInvert
	actMoreRings
	actFewerRings
	actMoreSectors
	actFewerSectors
)

func (a action) String() string {
	switch a {
	case actToggleSectors:
		return "toggle sectors"
	case actToggleInvert:
		return "toggle invert"
	case actMoreRings:
		return "more rings"
	case actFewerRings:
		return "fewer rings"
	case actMoreSectors:
		return "more sectors"
	case actFewerSectors:
		return "fewer sectors"
	}
	return "unknown"
}

// apply performs one setter call for a key press. Lower bounds are left to
// the builder, so pressing "fewer" at the limit surfaces its error.
func apply(g *polargrid.Builder, a action) error {
	p := g.Parameters()
	switch a {
	case actToggleSectors:
		g.SetSectorsEnabled(!p.SectorsEnabled)
	case actToggleInvert:
		g.SetInvert(!p.Invert)
	case actMoreRings:
		return g.SetRingCount(p.RingCount + 1)
	case actFewerRings:
		return g.SetRingCount(p.RingCount - 1)
	case actMoreSectors:
		return g.SetSectorCount(p.SectorCount + 1)
	case actFewerSectors:
		return g.SetSectorCount(p.SectorCount - 1)
	}
	return nil
}
