package tile

// Owner is the 5-bit tag identifying who owns a tile or a road type on
// it. Values below OwnerTown are company IDs.
type Owner uint8

const (
	OwnerTown  Owner = 0x0F
	OwnerNone  Owner = 0x10
	OwnerWater Owner = 0x11
	OwnerDeity Owner = 0x12
)

// TownID names the town a road tile is associated with.
type TownID uint8

// DiagDirection is a direction along one of the two tile axes, the
// facing of a bridge ramp or tunnel entrance.
type DiagDirection uint8

const (
	DiagDirNE DiagDirection = iota
	DiagDirSE
	DiagDirSW
	DiagDirNW
)

// Axis returns the axis the direction runs along: NE/SW lie on the X
// axis, SE/NW on the Y axis.
func (d DiagDirection) Axis() Axis { return Axis(d & 1) }

// Axis is one of the two diagonal tile axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the orthogonal axis.
func (a Axis) Other() Axis { return a ^ 1 }

// Track returns the straight rail track running along the axis.
func (a Axis) Track() Track { return Track(a) }

// RoadBits is the mask of cardinal half-tile road segments present on
// a tile.
type RoadBits uint8

const (
	RoadBitsNone RoadBits = 0
	RoadBitNW    RoadBits = 1
	RoadBitSW    RoadBits = 2
	RoadBitSE    RoadBits = 4
	RoadBitNE    RoadBits = 8
	RoadBitsX    RoadBits = RoadBitSW | RoadBitNE
	RoadBitsY    RoadBits = RoadBitNW | RoadBitSE
	RoadBitsAll  RoadBits = RoadBitsX | RoadBitsY
)

// DiagDirToRoadBits returns the half-tile road bit leading towards the
// given direction.
func DiagDirToRoadBits(d DiagDirection) RoadBits {
	return RoadBits(1 << (3 - d))
}

// AxisToRoadBits returns the full straight bar of road bits along the
// given axis.
func AxisToRoadBits(a Axis) RoadBits {
	if a == AxisX {
		return RoadBitsX
	}
	return RoadBitsY
}

// RoadType distinguishes the two road subtypes a tile can carry.
type RoadType uint8

const (
	RoadTypeRoad RoadType = iota
	RoadTypeTram
)

// Other returns the opposite road type.
func (rt RoadType) Other() RoadType { return rt ^ 1 }

// RoadTypes is the presence mask over RoadType.
type RoadTypes uint8

const (
	RoadTypesNone RoadTypes = 0
	RoadTypesRoad RoadTypes = 1 << RoadTypeRoad
	RoadTypesTram RoadTypes = 1 << RoadTypeTram
	RoadTypesAll  RoadTypes = RoadTypesRoad | RoadTypesTram
)

// Has reports whether the mask contains the given road type.
func (rts RoadTypes) Has(rt RoadType) bool {
	return rts&(1<<rt) != 0
}

// Roadside is the decoration style along a road tile.
type Roadside uint8

const (
	RoadsideBarren Roadside = iota
	RoadsideGrass
	RoadsidePaved
	RoadsideStreetLights
	RoadsideTrees
)

// DisallowedRoadDirections restricts the directions road vehicles may
// drive over a normal road tile.
type DisallowedRoadDirections uint8

const (
	DisallowedNone DisallowedRoadDirections = iota
	DisallowedSouthbound
	DisallowedNorthbound
	DisallowedBoth
)

// Track is a straight rail track piece; a level crossing always
// carries exactly one.
type Track uint8

const (
	TrackX Track = iota
	TrackY
)

// Bits returns the track as a TrackBits mask.
func (tr Track) Bits() TrackBits { return TrackBits(1 << tr) }

// TrackBits is a mask of rail track pieces.
type TrackBits uint8

const (
	TrackBitsNone TrackBits = 0
	TrackBitX     TrackBits = 1 << TrackX
	TrackBitY     TrackBits = 1 << TrackY
)

// RailType is the rail type index of the track crossing a level
// crossing; its values are defined by the rail layer.
type RailType uint8

// BridgeType is the bridge design index of a bridge ramp; its values
// are defined by the bridge catalogue.
type BridgeType uint8
