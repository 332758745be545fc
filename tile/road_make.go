package tile

import "github.com/eak1mov/go-gridmap/internal/assert"

// Constructors transitioning a tile between road subkinds. Each one
// overwrites every non-header field the new subkind cares about;
// nothing of the prior kind survives except where documented.

func roadBitsField(bits RoadBits, rts RoadTypes) uint8 {
	var m4 uint8
	if rts.Has(RoadTypeRoad) {
		m4 |= uint8(bits)
	}
	if rts.Has(RoadTypeTram) {
		m4 |= uint8(bits) << 4
	}
	return m4
}

// MakeRoadNormal overwrites the tile with a normal road tile carrying
// the given road bits for every present road type.
func (t *Tile) MakeRoadNormal(bits RoadBits, rts RoadTypes, town TownID, road, tram Owner) {
	t.setHeader(KindRoad, subRoadNormal)
	t.M1 = uint8(road) & 0x1F
	t.M2 = uint8(town)
	t.M3 = 0
	t.M4 = roadBitsField(bits, rts)
	t.M5 = uint8(rts) & 0x03
	t.M6 = uint8(tram) & 0x1F
	t.M7 = 0
	t.M8 = 0
}

// MakeRoadBridgeRamp overwrites the tile with a road bridge ramp
// facing d, carrying the straight road bar along the bridge axis for
// every present road type.
func (t *Tile) MakeRoadBridgeRamp(road, tram Owner, bt BridgeType, d DiagDirection, rts RoadTypes, town TownID) {
	t.setHeader(KindRoad, subRoadBridge)
	t.M1 = uint8(road) & 0x1F
	t.M2 = uint8(town)
	t.M3 = uint8(d) << 6
	t.M4 = roadBitsField(AxisToRoadBits(d.Axis()), rts)
	t.M5 = uint8(rts) & 0x03
	t.M6 = uint8(tram) & 0x1F
	t.M7 = uint8(bt)
	t.M8 = 0
}

// MakeNormalRoadFromBridge demotes a road bridge ramp to a normal road
// tile. Road bits are left as stored on the ramp; the caller adjusts
// them with SetRoadBits afterwards.
func (t *Tile) MakeNormalRoadFromBridge() {
	assert.That(t.IsRoadBridge(), "bridge demotion of %v tile", t.Kind())
	t.setHeader(KindRoad, subRoadNormal)
	sb(&t.M3, 6, 2, 0)
	t.M7 = 0
}

// MakeRoadBridgeFromRoad promotes a normal road tile to a bridge ramp
// facing d. Road bits carry over unchanged; the caller adjusts them
// with SetRoadBits afterwards. Works and direction restrictions do not
// survive the promotion.
func (t *Tile) MakeRoadBridgeFromRoad(bt BridgeType, d DiagDirection) {
	assert.That(t.IsNormalRoad(), "bridge promotion of %v tile", t.Kind())
	t.setHeader(KindRoad, subRoadBridge)
	sb(&t.M3, 6, 2, uint8(d))
	sb(&t.M5, 2, 2, 0)
	t.M7 = uint8(bt)
}

// MakeRoadCrossing overwrites the tile with a level crossing whose
// road runs along roadAxis and whose rail runs orthogonally. The
// crossing starts unbarred and unreserved.
func (t *Tile) MakeRoadCrossing(road, tram, rail Owner, roadAxis Axis, rat RailType, rts RoadTypes, town TownID) {
	t.setHeader(KindRoad, subRoadCrossing)
	t.M1 = uint8(rail) & 0x1F
	t.M2 = uint8(town)
	t.M3 = uint8(roadAxis) & 1
	t.M4 = roadBitsField(AxisToRoadBits(roadAxis), rts)
	t.M5 = uint8(rts) & 0x03
	t.M6 = uint8(tram) & 0x1F
	t.M7 = uint8(rat)
	t.M8 = uint8(road) & 0x1F
}
