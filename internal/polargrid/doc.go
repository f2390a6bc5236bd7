// Package polargrid builds the line geometry of a polar (range/bearing)
// grid overlay: concentric rings, optionally bounded to an angular sector
// and split by radial wedge lines.
//
// A Builder owns the current Parameters and the LineList generated from
// them. Every accepted setter call rebuilds the list synchronously. The
// output is emitted in the builder's own 2D plane (z = 0) and carries no
// renderer state; orienting and placing it is left to the caller (see
// internal/overlay).
//
// A Builder is not safe for concurrent use. Callers that share one across
// goroutines must serialise access.
package polargrid
