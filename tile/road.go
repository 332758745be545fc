package tile

import "github.com/eak1mov/go-gridmap/internal/assert"

// Road tile attributes. A road tile is one of three subkinds: normal
// road, road bridge ramp or level crossing. Road bits for both road
// types share M4 (road in the low nibble, tram in the high nibble);
// presence, disallowed directions and roadside share M5; M7 is works
// counter, bridge type or rail type depending on the subkind.

const roadWorksMax = 15

// RoadBits returns the present road bits for the given road type.
func (t *Tile) RoadBits(rt RoadType) RoadBits {
	assert.That(t.IsRoad(), "road bits of %v tile", t.Kind())
	return RoadBits(gb(t.M4, uint8(rt)*4, 4))
}

// OtherRoadBits returns the road bits of the road type other than the
// given one.
func (t *Tile) OtherRoadBits(rt RoadType) RoadBits {
	return t.RoadBits(rt.Other())
}

// AllRoadBits returns the union of both road types' bits.
func (t *Tile) AllRoadBits() RoadBits {
	assert.That(t.IsRoad(), "road bits of %v tile", t.Kind())
	return RoadBits(t.M4&0x0F | t.M4>>4)
}

// SetRoadBits replaces the road bits of the given road type, leaving
// the other road type's bits unchanged.
func (t *Tile) SetRoadBits(rt RoadType, r RoadBits) {
	assert.That(t.IsRoad(), "road bits of %v tile", t.Kind())
	sb(&t.M4, uint8(rt)*4, 4, uint8(r))
}

// AnyRoadBits returns the effective traversable road bits of the tile
// for the given road type. On a level crossing that is the straight
// bar along the road axis; on a bridge ramp the stored bits, plus,
// when tunnelBridgeEntrance is set, the implicit straight segment of
// the bridge mouth. Tiles without the road type yield no bits.
func (t *Tile) AnyRoadBits(rt RoadType, tunnelBridgeEntrance bool) RoadBits {
	assert.That(t.IsRoad(), "road bits of %v tile", t.Kind())
	if !t.HasRoadType(rt) {
		return RoadBitsNone
	}
	switch t.Subkind() {
	case subRoadCrossing:
		return t.CrossingRoadBits()
	case subRoadBridge:
		bits := t.RoadBits(rt)
		if tunnelBridgeEntrance {
			bits |= AxisToRoadBits(t.TunnelBridgeDirection().Axis())
		}
		return bits
	default:
		return t.RoadBits(rt)
	}
}

// RoadTypes returns the presence mask of road types on the tile.
func (t *Tile) RoadTypes() RoadTypes {
	assert.That(t.IsRoad(), "road types of %v tile", t.Kind())
	return RoadTypes(gb(t.M5, 0, 2))
}

// SetRoadTypes replaces the presence mask of road types.
func (t *Tile) SetRoadTypes(rts RoadTypes) {
	assert.That(t.IsRoad(), "road types of %v tile", t.Kind())
	sb(&t.M5, 0, 2, uint8(rts))
}

// HasRoadType reports whether the tile carries the given road type.
func (t *Tile) HasRoadType(rt RoadType) bool {
	return t.RoadTypes().Has(rt)
}

// RoadOwner returns the owner of the given road type. Road and tram
// ownership are tracked independently.
func (t *Tile) RoadOwner(rt RoadType) Owner {
	assert.That(t.IsRoad(), "road owner of %v tile", t.Kind())
	if rt == RoadTypeTram {
		return Owner(gb(t.M6, 0, 5))
	}
	// On a crossing M1 holds the rail owner; the road owner moves to M8.
	if t.Subkind() == subRoadCrossing {
		return Owner(gb(t.M8, 0, 5))
	}
	return Owner(gb(t.M1, 0, 5))
}

// SetRoadOwner sets the owner of the given road type.
func (t *Tile) SetRoadOwner(rt RoadType, o Owner) {
	assert.That(t.IsRoad(), "road owner of %v tile", t.Kind())
	switch {
	case rt == RoadTypeTram:
		sb(&t.M6, 0, 5, uint8(o))
	case t.Subkind() == subRoadCrossing:
		sb(&t.M8, 0, 5, uint8(o))
	default:
		sb(&t.M1, 0, 5, uint8(o))
	}
}

// IsRoadOwner reports whether the given road type is owned by o.
func (t *Tile) IsRoadOwner(rt RoadType, o Owner) bool {
	assert.That(t.HasRoadType(rt), "owner of absent road type %d", rt)
	return t.RoadOwner(rt) == o
}

// HasTownOwnedRoad reports whether the tile has road (not tram) owned
// by a town.
func (t *Tile) HasTownOwnedRoad() bool {
	return t.HasRoadType(RoadTypeRoad) && t.IsRoadOwner(RoadTypeRoad, OwnerTown)
}

// Roadside returns the decoration style along the road.
func (t *Tile) Roadside() Roadside {
	assert.That(t.IsRoad(), "roadside of %v tile", t.Kind())
	return Roadside(gb(t.M5, 4, 3))
}

// SetRoadside sets the decoration style along the road.
func (t *Tile) SetRoadside(s Roadside) {
	assert.That(t.IsRoad(), "roadside of %v tile", t.Kind())
	sb(&t.M5, 4, 3, uint8(s))
}

// HasRoadWorks reports whether road works are in progress on the tile.
// Works only ever run on normal road tiles.
func (t *Tile) HasRoadWorks() bool {
	assert.That(t.IsRoad(), "road works of %v tile", t.Kind())
	return t.Subkind() == subRoadNormal && hasBit(t.M7, 4)
}

// StartRoadWorks begins road works on a normal road tile, arming the
// countdown at its maximum.
func (t *Tile) StartRoadWorks() {
	assert.That(t.IsNormalRoad(), "road works on %v tile", t.Kind())
	assert.That(!t.HasRoadWorks(), "road works already running")
	sb(&t.M7, 0, 4, roadWorksMax)
	setBit(&t.M7, 4)
}

// DecreaseRoadWorksCounter decrements the works countdown and reports
// whether the works just entered their last stage. The works flag
// stays set; the caller finishes the works with TerminateRoadWorks.
func (t *Tile) DecreaseRoadWorksCounter() bool {
	assert.That(t.IsNormalRoad() && t.HasRoadWorks(), "no road works to decrease")
	counter := gb(t.M7, 0, 4) - 1
	sb(&t.M7, 0, 4, counter)
	return counter == 0
}

// TerminateRoadWorks finishes the road works on the tile, clearing the
// flag and the countdown.
func (t *Tile) TerminateRoadWorks() {
	assert.That(t.IsNormalRoad() && t.HasRoadWorks(), "no road works to terminate")
	sb(&t.M7, 0, 5, 0)
}

// DisallowedRoadDirections returns the direction restrictions of a
// normal road tile.
func (t *Tile) DisallowedRoadDirections() DisallowedRoadDirections {
	assert.That(t.IsNormalRoad(), "disallowed directions of %v tile", t.Kind())
	return DisallowedRoadDirections(gb(t.M5, 2, 2))
}

// SetDisallowedRoadDirections sets the direction restrictions of a
// normal road tile.
func (t *Tile) SetDisallowedRoadDirections(drd DisallowedRoadDirections) {
	assert.That(t.IsNormalRoad(), "disallowed directions of %v tile", t.Kind())
	sb(&t.M5, 2, 2, uint8(drd))
}

// RoadBridgeType returns the bridge design of a road bridge ramp.
func (t *Tile) RoadBridgeType() BridgeType {
	assert.That(t.IsRoadBridge(), "bridge type of %v tile", t.Kind())
	return BridgeType(t.M7)
}

// SetRoadBridgeType sets the bridge design of a road bridge ramp.
func (t *Tile) SetRoadBridgeType(bt BridgeType) {
	assert.That(t.IsRoadBridge(), "bridge type of %v tile", t.Kind())
	t.M7 = uint8(bt)
}

// IsExtendedRoadBridge reports whether the ramp carries road bits off
// the bridge axis, making it a junction-like custom bridgehead.
func (t *Tile) IsExtendedRoadBridge() bool {
	assert.That(t.IsRoadBridge(), "bridgehead check of %v tile", t.Kind())
	return t.AllRoadBits()&^AxisToRoadBits(t.TunnelBridgeDirection().Axis()) != RoadBitsNone
}

// CrossingRoadAxis returns the axis the road runs along.
func (t *Tile) CrossingRoadAxis() Axis {
	assert.That(t.IsLevelCrossing(), "crossing axis of %v tile", t.Kind())
	return Axis(gb(t.M3, 0, 1))
}

// CrossingRailAxis returns the axis the rail runs along, orthogonal to
// the road axis.
func (t *Tile) CrossingRailAxis() Axis {
	return t.CrossingRoadAxis().Other()
}

// CrossingRoadBits returns the straight bar of road bits along the
// crossing's road axis.
func (t *Tile) CrossingRoadBits() RoadBits {
	return AxisToRoadBits(t.CrossingRoadAxis())
}

// CrossingRailTrack returns the single rail track across the crossing.
func (t *Tile) CrossingRailTrack() Track {
	return t.CrossingRailAxis().Track()
}

// CrossingRailBits returns the crossing's rail track as a bit mask.
func (t *Tile) CrossingRailBits() TrackBits {
	return t.CrossingRailTrack().Bits()
}

// CrossingRailType returns the rail type of the track crossing the
// tile.
func (t *Tile) CrossingRailType() RailType {
	assert.That(t.IsLevelCrossing(), "crossing rail type of %v tile", t.Kind())
	return RailType(t.M7)
}

// HasCrossingReservation reports whether the rail track across the
// crossing is reserved for an approaching train.
func (t *Tile) HasCrossingReservation() bool {
	assert.That(t.IsLevelCrossing(), "crossing reservation of %v tile", t.Kind())
	return hasBit(t.M3, 3)
}

// SetCrossingReservation sets or clears the rail reservation. The bar
// state is independent of the reservation.
func (t *Tile) SetCrossingReservation(b bool) {
	assert.That(t.IsLevelCrossing(), "crossing reservation of %v tile", t.Kind())
	if b {
		setBit(&t.M3, 3)
	} else {
		clrBit(&t.M3, 3)
	}
}

// CrossingReservationTrackBits returns the crossing's rail bits when
// reserved, else the empty mask.
func (t *Tile) CrossingReservationTrackBits() TrackBits {
	if !t.HasCrossingReservation() {
		return TrackBitsNone
	}
	return t.CrossingRailBits()
}

// IsCrossingBarred reports whether the crossing gates are down.
func (t *Tile) IsCrossingBarred() bool {
	assert.That(t.IsLevelCrossing(), "bar state of %v tile", t.Kind())
	return hasBit(t.M3, 5)
}

// SetCrossingBarred sets the bar state of the crossing.
func (t *Tile) SetCrossingBarred(barred bool) {
	assert.That(t.IsLevelCrossing(), "bar state of %v tile", t.Kind())
	if barred {
		setBit(&t.M3, 5)
	} else {
		clrBit(&t.M3, 5)
	}
}

// BarCrossing lowers the crossing gates.
func (t *Tile) BarCrossing() { t.SetCrossingBarred(true) }

// UnbarCrossing raises the crossing gates.
func (t *Tile) UnbarCrossing() { t.SetCrossingBarred(false) }
