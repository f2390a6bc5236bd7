package polargrid

import "errors"

var (
	// ErrInvalidRange is returned when an angle update would make the
	// minimum sector angle reach or pass the maximum. The previous value
	// is kept.
	ErrInvalidRange = errors.New("invalid sector angle range")

	// ErrInvalidSectorCount is returned for a sector count below one.
	ErrInvalidSectorCount = errors.New("invalid sector count")

	// ErrInvalidParameter covers the remaining out-of-range inputs
	// (negative radii or ring counts, bearings outside [-180,180],
	// colour components outside [0,1]).
	ErrInvalidParameter = errors.New("invalid grid parameter")
)
