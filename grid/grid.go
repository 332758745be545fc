// Package grid implements the world map container: a flat array of
// packed tile records addressed by a linear tile index, plus
// index-level wrappers over the tile accessor layer.
package grid

import (
	"iter"
	"math/bits"

	"github.com/eak1mov/go-gridmap/internal/assert"
	"github.com/eak1mov/go-gridmap/tile"
)

// TileIndex is the linear index of a tile within a map.
type TileIndex uint32

// Map owns the tile records of one world. Records live contiguously;
// their addresses are stable for the lifetime of the map. The map is
// not safe for concurrent mutation; the simulation mutates it from a
// single worker.
type Map struct {
	sizeX, sizeY uint
	shiftY       uint
	maskX, maskY uint
	tiles        []tile.Tile
}

// New allocates a map of sizeX by sizeY ground tiles. Both dimensions
// must be powers of two.
func New(sizeX, sizeY uint) *Map {
	assert.That(sizeX > 0 && bits.OnesCount(sizeX) == 1, "map width %d not a power of two", sizeX)
	assert.That(sizeY > 0 && bits.OnesCount(sizeY) == 1, "map height %d not a power of two", sizeY)

	m := &Map{
		sizeX:  sizeX,
		sizeY:  sizeY,
		shiftY: uint(bits.TrailingZeros(sizeX)),
		maskX:  sizeX - 1,
		maskY:  sizeY - 1,
		tiles:  make([]tile.Tile, sizeX*sizeY),
	}
	for i := range m.tiles {
		m.tiles[i].MakeGround()
	}
	return m
}

// SizeX returns the map width in tiles.
func (m *Map) SizeX() uint { return m.sizeX }

// SizeY returns the map height in tiles.
func (m *Map) SizeY() uint { return m.sizeY }

// Len returns the number of tiles in the map.
func (m *Map) Len() int { return len(m.tiles) }

// TileXY converts coordinates to a linear tile index. Coordinates wrap
// at the power-of-two map edges, so derived neighbour arithmetic never
// leaves the array.
func (m *Map) TileXY(x, y uint) TileIndex {
	return TileIndex((y&m.maskY)<<m.shiftY | x&m.maskX)
}

// TileX returns the x coordinate of a tile index.
func (m *Map) TileX(t TileIndex) uint { return uint(t) & m.maskX }

// TileY returns the y coordinate of a tile index.
func (m *Map) TileY(t TileIndex) uint { return uint(t) >> m.shiftY }

// Tile returns the record at the given index. This is the hot path:
// no bounds check beyond the slice's own; callers hold indices
// produced by TileXY.
func (m *Map) Tile(t TileIndex) *tile.Tile {
	return &m.tiles[t]
}

// Tiles iterates over all records in linear index order.
func (m *Map) Tiles() iter.Seq2[TileIndex, *tile.Tile] {
	return func(yield func(TileIndex, *tile.Tile) bool) {
		for i := range m.tiles {
			if !yield(TileIndex(i), &m.tiles[i]) {
				return
			}
		}
	}
}
