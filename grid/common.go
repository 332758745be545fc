package grid

import "github.com/eak1mov/go-gridmap/tile"

// Index-level wrappers over the common attribute layer. Preconditions
// are those of the underlying tile accessors.

// Owner returns the owner of the tile at t.
func (m *Map) Owner(t TileIndex) tile.Owner { return m.Tile(t).Owner() }

// SetOwner sets the owner of the tile at t.
func (m *Map) SetOwner(t TileIndex, o tile.Owner) { m.Tile(t).SetOwner(o) }

// IsOwner reports whether the tile at t belongs to o.
func (m *Map) IsOwner(t TileIndex, o tile.Owner) bool { return m.Tile(t).IsOwner(o) }

// Snow reports whether the tile at t is on snow or desert.
func (m *Map) Snow(t TileIndex) bool { return m.Tile(t).Snow() }

// SetSnow sets or clears the snow/desert flag of the tile at t.
func (m *Map) SetSnow(t TileIndex, set bool) { m.Tile(t).SetSnow(set) }

// ToggleSnow flips the snow/desert flag of the tile at t.
func (m *Map) ToggleSnow(t TileIndex) { m.Tile(t).ToggleSnow() }

// RandomBits returns the random bits of the tile at t.
func (m *Map) RandomBits(t TileIndex) uint8 { return m.Tile(t).RandomBits() }

// SetRandomBits sets the random bits of the tile at t.
func (m *Map) SetRandomBits(t TileIndex, random uint8) { m.Tile(t).SetRandomBits(random) }

// Frame returns the animation frame of the tile at t.
func (m *Map) Frame(t TileIndex) uint8 { return m.Tile(t).Frame() }

// SetFrame sets the animation frame of the tile at t.
func (m *Map) SetFrame(t TileIndex, frame uint8) { m.Tile(t).SetFrame(frame) }

// TunnelBridgeDirection returns the facing of the bridge ramp or
// tunnel entrance at t.
func (m *Map) TunnelBridgeDirection(t TileIndex) tile.DiagDirection {
	return m.Tile(t).TunnelBridgeDirection()
}
