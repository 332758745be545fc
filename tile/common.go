package tile

import "github.com/eak1mov/go-gridmap/internal/assert"

// Attributes shared between several tile kinds. Each accessor asserts
// the set of kinds that actually own its slice of the record; reading
// an aliased slice through the wrong kind is a caller bug.

func (t *Tile) hasOwner() bool {
	k := t.Kind()
	return k != KindVoid && k != KindIndustry && k != KindHouse
}

// Owner returns the owner of the tile. On a level crossing this is the
// rail owner; the road owners live in the road layer.
func (t *Tile) Owner() Owner {
	assert.That(t.hasOwner(), "owner of %v tile", t.Kind())
	return Owner(gb(t.M1, 0, 5))
}

// SetOwner sets the owner of the tile.
func (t *Tile) SetOwner(o Owner) {
	assert.That(t.hasOwner(), "owner of %v tile", t.Kind())
	sb(&t.M1, 0, 5, uint8(o))
}

// IsOwner reports whether the tile belongs to the given owner.
func (t *Tile) IsOwner(o Owner) bool {
	return t.Owner() == o
}

func (t *Tile) hasSnow() bool {
	return t.IsRoad() || (t.IsRail() && !t.IsRailTrack()) || t.IsMisc()
}

// Snow reports whether the tile is on snow (desert in tropic climate).
func (t *Tile) Snow() bool {
	assert.That(t.hasSnow(), "snow bit of %v tile", t.Kind())
	return hasBit(t.M3, 4)
}

// SetSnow sets or clears the snow/desert flag.
func (t *Tile) SetSnow(set bool) {
	assert.That(t.hasSnow(), "snow bit of %v tile", t.Kind())
	if set {
		setBit(&t.M3, 4)
	} else {
		clrBit(&t.M3, 4)
	}
}

// ToggleSnow flips the snow/desert flag.
func (t *Tile) ToggleSnow() {
	assert.That(t.hasSnow(), "snow bit of %v tile", t.Kind())
	toggleBit(&t.M3, 4)
}

// Desert is the tropic-climate alias of Snow; same bit, same rules.
func (t *Tile) Desert() bool { return t.Snow() }

// SetDesert is the tropic-climate alias of SetSnow.
func (t *Tile) SetDesert(set bool) { t.SetSnow(set) }

// ToggleDesert is the tropic-climate alias of ToggleSnow.
func (t *Tile) ToggleDesert() { t.ToggleSnow() }

func (t *Tile) hasRandomBits() bool {
	k := t.Kind()
	return k == KindHouse || k == KindObject || k == KindIndustry || k == KindWater
}

// RandomBits returns the per-tile random bits used for graphical
// variation.
func (t *Tile) RandomBits() uint8 {
	assert.That(t.hasRandomBits(), "random bits of %v tile", t.Kind())
	return t.M3
}

// SetRandomBits sets the per-tile random bits.
func (t *Tile) SetRandomBits(random uint8) {
	assert.That(t.hasRandomBits(), "random bits of %v tile", t.Kind())
	t.M3 = random
}

func (t *Tile) hasFrame() bool {
	k := t.Kind()
	return k == KindHouse || k == KindObject || k == KindIndustry || k == KindStation
}

// Frame returns the current animation frame of the tile.
func (t *Tile) Frame() uint8 {
	assert.That(t.hasFrame(), "frame of %v tile", t.Kind())
	return t.M7
}

// SetFrame sets the current animation frame of the tile.
func (t *Tile) SetFrame(frame uint8) {
	assert.That(t.hasFrame(), "frame of %v tile", t.Kind())
	t.M7 = frame
}

// TunnelBridgeDirection returns the direction a bridge ramp or tunnel
// entrance heads into.
func (t *Tile) TunnelBridgeDirection() DiagDirection {
	assert.That(t.IsBridge() || t.IsTunnel(), "tunnel/bridge direction of %v tile", t.Kind())
	return DiagDirection(gb(t.M3, 6, 2))
}
