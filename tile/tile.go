// Package tile implements the packed per-tile record of the world grid
// and the accessor algebra over it.
//
// A record is one header byte plus eight attribute bytes M1..M8. The
// attribute bytes are aliased across tile kinds: the same physical bits
// store road bits on a road tile and random bits on a house tile. Every
// accessor therefore carries a kind precondition, checked through
// internal/assert, and each setter touches only the bit slice it owns.
package tile

// Kind is the coarse classification of a tile, stored in the upper
// nibble of the header byte.
type Kind uint8

const (
	KindVoid Kind = iota
	KindGround
	KindRail
	KindRoad
	KindMisc
	KindWater
	KindHouse
	KindIndustry
	KindObject
	KindStation

	kindCount
)

var kindNames = [kindCount]string{
	"void", "ground", "rail", "road", "misc",
	"water", "house", "industry", "object", "station",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// Subkinds, stored in the low two bits of the header byte. Their
// meaning depends on the kind.
const (
	subRoadNormal   = 0
	subRoadBridge   = 1
	subRoadCrossing = 2

	subRailTrack  = 0
	subRailBridge = 1

	subMiscTunnel = 0
	subMiscDepot  = 1
)

// Tile is a single packed map record. The zero value is a void tile.
//
// Byte roles on road tiles: M1 owner (rail owner on crossings), M2
// town, M3 flag bits (crossing axis, reservation, snow, barred, bridge
// facing), M4 road bits for both road types, M5 road types, disallowed
// directions and roadside, M6 tram owner, M7 works counter / bridge
// type / rail type depending on subkind, M8 crossing road owner. Other
// kinds alias the same bytes; see the accessor preconditions.
type Tile struct {
	Header uint8
	M1     uint8
	M2     uint8
	M3     uint8
	M4     uint8
	M5     uint8
	M6     uint8
	M7     uint8
	M8     uint8
}

// Kind returns the coarse classification of the tile.
func (t *Tile) Kind() Kind { return Kind(t.Header >> 4) }

// Subkind returns the kind-dependent subkind bits of the header.
func (t *Tile) Subkind() uint8 { return t.Header & 0x03 }

func (t *Tile) setHeader(k Kind, sub uint8) {
	t.Header = uint8(k)<<4 | sub&0x03
}

// MakeHeader packs a kind and subkind into a header byte. It is meant
// for storage layers that persist the two separately.
func MakeHeader(k Kind, sub uint8) uint8 {
	return uint8(k)<<4 | sub&0x03
}

func (t *Tile) IsVoid() bool     { return t.Kind() == KindVoid }
func (t *Tile) IsGround() bool   { return t.Kind() == KindGround }
func (t *Tile) IsRail() bool     { return t.Kind() == KindRail }
func (t *Tile) IsRoad() bool     { return t.Kind() == KindRoad }
func (t *Tile) IsMisc() bool     { return t.Kind() == KindMisc }
func (t *Tile) IsWater() bool    { return t.Kind() == KindWater }
func (t *Tile) IsHouse() bool    { return t.Kind() == KindHouse }
func (t *Tile) IsIndustry() bool { return t.Kind() == KindIndustry }
func (t *Tile) IsObject() bool   { return t.Kind() == KindObject }
func (t *Tile) IsStation() bool  { return t.Kind() == KindStation }

// IsNormalRoad reports whether the tile is a normal road tile, as
// opposed to a road bridge ramp or a level crossing.
func (t *Tile) IsNormalRoad() bool {
	return t.IsRoad() && t.Subkind() == subRoadNormal
}

// IsRoadBridge reports whether the tile is a road bridge ramp.
func (t *Tile) IsRoadBridge() bool {
	return t.IsRoad() && t.Subkind() == subRoadBridge
}

// IsLevelCrossing reports whether the tile is a level crossing.
func (t *Tile) IsLevelCrossing() bool {
	return t.IsRoad() && t.Subkind() == subRoadCrossing
}

// IsRailTrack reports whether the tile is plain rail track, the one
// rail subkind that does not carry the snow/desert flag.
func (t *Tile) IsRailTrack() bool {
	return t.IsRail() && t.Subkind() == subRailTrack
}

// IsBridge reports whether the tile hosts a bridge ramp of any
// transport kind.
func (t *Tile) IsBridge() bool {
	switch t.Kind() {
	case KindRoad:
		return t.Subkind() == subRoadBridge
	case KindRail:
		return t.Subkind() == subRailBridge
	default:
		return false
	}
}

// IsTunnel reports whether the tile is a tunnel entrance.
func (t *Tile) IsTunnel() bool {
	return t.IsMisc() && t.Subkind() == subMiscTunnel
}

// MakeVoid overwrites the tile with a void record.
func (t *Tile) MakeVoid() {
	*t = Tile{}
}

// MakeGround overwrites the tile with a bare ground record owned by
// nobody. Ground attributes beyond ownership belong to the ground
// layer and are left zeroed.
func (t *Tile) MakeGround() {
	*t = Tile{M1: uint8(OwnerNone)}
	t.setHeader(KindGround, 0)
}
