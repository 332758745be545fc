package grid

import "github.com/eak1mov/go-gridmap/tile"

// Index-level wrappers over the road tile layer; the layer pathfinding
// and construction code calls into. Each mirrors its tile accessor
// exactly, preconditions included.

// RoadBits returns the road bits at t for the given road type.
func (m *Map) RoadBits(t TileIndex, rt tile.RoadType) tile.RoadBits {
	return m.Tile(t).RoadBits(rt)
}

// OtherRoadBits returns the road bits at t of the other road type.
func (m *Map) OtherRoadBits(t TileIndex, rt tile.RoadType) tile.RoadBits {
	return m.Tile(t).OtherRoadBits(rt)
}

// AllRoadBits returns the union of both road types' bits at t.
func (m *Map) AllRoadBits(t TileIndex) tile.RoadBits {
	return m.Tile(t).AllRoadBits()
}

// SetRoadBits replaces the road bits at t for the given road type.
func (m *Map) SetRoadBits(t TileIndex, r tile.RoadBits, rt tile.RoadType) {
	m.Tile(t).SetRoadBits(rt, r)
}

// AnyRoadBits returns the effective traversable road bits at t from
// the perspective of the given road type.
func (m *Map) AnyRoadBits(t TileIndex, rt tile.RoadType, tunnelBridgeEntrance bool) tile.RoadBits {
	return m.Tile(t).AnyRoadBits(rt, tunnelBridgeEntrance)
}

// RoadTypes returns the presence mask of road types at t.
func (m *Map) RoadTypes(t TileIndex) tile.RoadTypes { return m.Tile(t).RoadTypes() }

// SetRoadTypes replaces the presence mask of road types at t.
func (m *Map) SetRoadTypes(t TileIndex, rts tile.RoadTypes) { m.Tile(t).SetRoadTypes(rts) }

// HasRoadType reports whether the tile at t carries the road type.
func (m *Map) HasRoadType(t TileIndex, rt tile.RoadType) bool {
	return m.Tile(t).HasRoadType(rt)
}

// RoadOwner returns the owner of the given road type at t.
func (m *Map) RoadOwner(t TileIndex, rt tile.RoadType) tile.Owner {
	return m.Tile(t).RoadOwner(rt)
}

// SetRoadOwner sets the owner of the given road type at t.
func (m *Map) SetRoadOwner(t TileIndex, rt tile.RoadType, o tile.Owner) {
	m.Tile(t).SetRoadOwner(rt, o)
}

// IsRoadOwner reports whether the given road type at t is owned by o.
func (m *Map) IsRoadOwner(t TileIndex, rt tile.RoadType, o tile.Owner) bool {
	return m.Tile(t).IsRoadOwner(rt, o)
}

// HasTownOwnedRoad reports whether the tile at t has town-owned road.
func (m *Map) HasTownOwnedRoad(t TileIndex) bool { return m.Tile(t).HasTownOwnedRoad() }

// Roadside returns the road decoration at t.
func (m *Map) Roadside(t TileIndex) tile.Roadside { return m.Tile(t).Roadside() }

// SetRoadside sets the road decoration at t.
func (m *Map) SetRoadside(t TileIndex, s tile.Roadside) { m.Tile(t).SetRoadside(s) }

// HasRoadWorks reports whether road works run at t.
func (m *Map) HasRoadWorks(t TileIndex) bool { return m.Tile(t).HasRoadWorks() }

// StartRoadWorks begins road works at t.
func (m *Map) StartRoadWorks(t TileIndex) { m.Tile(t).StartRoadWorks() }

// DecreaseRoadWorksCounter decrements the works countdown at t and
// reports whether the works entered their last stage.
func (m *Map) DecreaseRoadWorksCounter(t TileIndex) bool {
	return m.Tile(t).DecreaseRoadWorksCounter()
}

// TerminateRoadWorks finishes the road works at t.
func (m *Map) TerminateRoadWorks(t TileIndex) { m.Tile(t).TerminateRoadWorks() }

// DisallowedRoadDirections returns the direction restrictions at t.
func (m *Map) DisallowedRoadDirections(t TileIndex) tile.DisallowedRoadDirections {
	return m.Tile(t).DisallowedRoadDirections()
}

// SetDisallowedRoadDirections sets the direction restrictions at t.
func (m *Map) SetDisallowedRoadDirections(t TileIndex, drd tile.DisallowedRoadDirections) {
	m.Tile(t).SetDisallowedRoadDirections(drd)
}

// RoadBridgeType returns the bridge design of the ramp at t.
func (m *Map) RoadBridgeType(t TileIndex) tile.BridgeType { return m.Tile(t).RoadBridgeType() }

// SetRoadBridgeType sets the bridge design of the ramp at t.
func (m *Map) SetRoadBridgeType(t TileIndex, bt tile.BridgeType) {
	m.Tile(t).SetRoadBridgeType(bt)
}

// IsExtendedRoadBridge reports whether the ramp at t is a custom
// bridgehead.
func (m *Map) IsExtendedRoadBridge(t TileIndex) bool { return m.Tile(t).IsExtendedRoadBridge() }

// CrossingRoadAxis returns the road axis of the crossing at t.
func (m *Map) CrossingRoadAxis(t TileIndex) tile.Axis { return m.Tile(t).CrossingRoadAxis() }

// CrossingRailAxis returns the rail axis of the crossing at t.
func (m *Map) CrossingRailAxis(t TileIndex) tile.Axis { return m.Tile(t).CrossingRailAxis() }

// CrossingRoadBits returns the road bits of the crossing at t.
func (m *Map) CrossingRoadBits(t TileIndex) tile.RoadBits { return m.Tile(t).CrossingRoadBits() }

// CrossingRailTrack returns the rail track of the crossing at t.
func (m *Map) CrossingRailTrack(t TileIndex) tile.Track { return m.Tile(t).CrossingRailTrack() }

// CrossingRailBits returns the rail track bits of the crossing at t.
func (m *Map) CrossingRailBits(t TileIndex) tile.TrackBits { return m.Tile(t).CrossingRailBits() }

// HasCrossingReservation reports whether the crossing at t is reserved.
func (m *Map) HasCrossingReservation(t TileIndex) bool {
	return m.Tile(t).HasCrossingReservation()
}

// SetCrossingReservation sets the reservation state of the crossing at t.
func (m *Map) SetCrossingReservation(t TileIndex, b bool) {
	m.Tile(t).SetCrossingReservation(b)
}

// CrossingReservationTrackBits returns the reserved rail bits of the
// crossing at t.
func (m *Map) CrossingReservationTrackBits(t TileIndex) tile.TrackBits {
	return m.Tile(t).CrossingReservationTrackBits()
}

// IsCrossingBarred reports whether the crossing at t is barred.
func (m *Map) IsCrossingBarred(t TileIndex) bool { return m.Tile(t).IsCrossingBarred() }

// SetCrossingBarred sets the bar state of the crossing at t.
func (m *Map) SetCrossingBarred(t TileIndex, barred bool) { m.Tile(t).SetCrossingBarred(barred) }

// BarCrossing lowers the gates of the crossing at t.
func (m *Map) BarCrossing(t TileIndex) { m.Tile(t).BarCrossing() }

// UnbarCrossing raises the gates of the crossing at t.
func (m *Map) UnbarCrossing(t TileIndex) { m.Tile(t).UnbarCrossing() }

// MakeRoadNormal overwrites the tile at t with a normal road tile.
func (m *Map) MakeRoadNormal(t TileIndex, bits tile.RoadBits, rts tile.RoadTypes, town tile.TownID, road, tram tile.Owner) {
	m.Tile(t).MakeRoadNormal(bits, rts, town, road, tram)
}

// MakeRoadBridgeRamp overwrites the tile at t with a road bridge ramp.
func (m *Map) MakeRoadBridgeRamp(t TileIndex, road, tram tile.Owner, bt tile.BridgeType, d tile.DiagDirection, rts tile.RoadTypes, town tile.TownID) {
	m.Tile(t).MakeRoadBridgeRamp(road, tram, bt, d, rts, town)
}

// MakeNormalRoadFromBridge demotes the bridge ramp at t to normal road.
func (m *Map) MakeNormalRoadFromBridge(t TileIndex) { m.Tile(t).MakeNormalRoadFromBridge() }

// MakeRoadBridgeFromRoad promotes the normal road at t to a bridge ramp.
func (m *Map) MakeRoadBridgeFromRoad(t TileIndex, bt tile.BridgeType, d tile.DiagDirection) {
	m.Tile(t).MakeRoadBridgeFromRoad(bt, d)
}

// MakeRoadCrossing overwrites the tile at t with a level crossing.
func (m *Map) MakeRoadCrossing(t TileIndex, road, tram, rail tile.Owner, roadAxis tile.Axis, rat tile.RailType, rts tile.RoadTypes, town tile.TownID) {
	m.Tile(t).MakeRoadCrossing(road, tram, rail, roadAxis, rat, rts, town)
}
