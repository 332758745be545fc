// Package curve provides Hilbert scan codes over a map grid. Walking
// tiles in code order keeps successive records spatially close, which
// the dump format uses for clustered record ordering and whole-map
// scans use for cache locality.
package curve

import (
	"math/bits"

	"github.com/google/hilbert"

	"github.com/eak1mov/go-gridmap/internal/assert"
)

// Side returns the Hilbert square side for a map of the given
// dimensions: the larger of the two, which for power-of-two maps is
// itself a power of two.
func Side(sizeX, sizeY uint) uint {
	return max(sizeX, sizeY)
}

// Curve is a Hilbert curve over a side-by-side square, built once per
// scan and reused for every code lookup.
type Curve struct {
	h    *hilbert.Hilbert
	side uint
}

// New constructs a curve over a square with the given side, which must
// be a power of two.
func New(side uint) Curve {
	assert.That(side > 0 && bits.OnesCount(side) == 1, "curve side %d not a power of two", side)
	h, _ := hilbert.NewHilbert(int(side))
	return Curve{h: h, side: side}
}

// ForMap constructs the curve covering a map of the given dimensions.
func ForMap(sizeX, sizeY uint) Curve {
	return New(Side(sizeX, sizeY))
}

func (c Curve) Side() uint { return c.side }

// Len is the number of codes on the curve.
func (c Curve) Len() uint64 { return uint64(c.side) * uint64(c.side) }

// Code maps a position inside the square to its position on the curve.
func (c Curve) Code(x, y uint) uint64 {
	code, _ := c.h.MapInverse(int(x), int(y))
	return uint64(code)
}

// Pos is the inverse of Code.
func (c Curve) Pos(code uint64) (x, y uint) {
	px, py, _ := c.h.Map(int(code))
	return uint(px), uint(py)
}
