package tile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func tileOfKind(k Kind, sub uint8) Tile {
	var rec Tile
	rec.setHeader(k, sub)
	return rec
}

func TestOwnerRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindGround, KindRail, KindRoad, KindMisc, KindWater, KindObject, KindStation} {
		rec := tileOfKind(kind, 0)
		rec.M1 = 0xE0 // bits outside the owner slice must survive

		for _, o := range []Owner{0, 1, 14, OwnerTown, OwnerNone, OwnerWater, OwnerDeity} {
			rec.SetOwner(o)
			require.Equal(t, o, rec.Owner(), "kind %v", kind)
			require.True(t, rec.IsOwner(o))
			require.Equal(t, uint8(0xE0), rec.M1&0xE0)
		}
	}
}

func TestOwnerPrecondition(t *testing.T) {
	for _, kind := range []Kind{KindVoid, KindIndustry, KindHouse} {
		rec := tileOfKind(kind, 0)
		require.Panics(t, func() { rec.Owner() })
		require.Panics(t, func() { rec.SetOwner(OwnerNone) })
	}
}

func TestSnowRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		rec  Tile
	}{
		{"road", tileOfKind(KindRoad, subRoadNormal)},
		{"rail bridge", tileOfKind(KindRail, subRailBridge)},
		{"misc", tileOfKind(KindMisc, subMiscTunnel)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.rec
			before := rec

			require.False(t, rec.Snow(), "snow must start clear")
			rec.SetSnow(true)
			require.True(t, rec.Snow())
			require.True(t, rec.Desert())
			rec.ToggleSnow()
			require.False(t, rec.Snow())

			// Only bit 4 of M3 may ever change.
			rec.SetSnow(true)
			rec.M3 &^= 1 << 4
			if diff := cmp.Diff(before, rec); diff != "" {
				t.Errorf("snow setter touched other bits (-want+got):\n%v", diff)
			}
		})
	}
}

func TestSnowPrecondition(t *testing.T) {
	plainTrack := tileOfKind(KindRail, subRailTrack)
	require.Panics(t, func() { plainTrack.Snow() })

	house := tileOfKind(KindHouse, 0)
	require.Panics(t, func() { house.SetSnow(true) })
	require.Panics(t, func() { house.ToggleSnow() })
}

func TestRandomBitsRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindHouse, KindObject, KindIndustry, KindWater} {
		rec := tileOfKind(kind, 0)
		for _, v := range []uint8{0, 1, 0x55, 0xAA, 0xFF} {
			rec.SetRandomBits(v)
			require.Equal(t, v, rec.RandomBits(), "kind %v", kind)
		}
	}

	road := tileOfKind(KindRoad, subRoadNormal)
	require.Panics(t, func() { road.RandomBits() })
	require.Panics(t, func() { road.SetRandomBits(0xFF) })
}

func TestFrameRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindHouse, KindObject, KindIndustry, KindStation} {
		rec := tileOfKind(kind, 0)
		for _, v := range []uint8{0, 7, 0xFF} {
			rec.SetFrame(v)
			require.Equal(t, v, rec.Frame(), "kind %v", kind)
		}
	}

	water := tileOfKind(KindWater, 0)
	require.Panics(t, func() { water.Frame() })
}

func TestTunnelBridgeDirection(t *testing.T) {
	for _, d := range []DiagDirection{DiagDirNE, DiagDirSE, DiagDirSW, DiagDirNW} {
		var rec Tile
		rec.MakeRoadBridgeRamp(OwnerNone, OwnerNone, 0, d, RoadTypesRoad, 0)
		require.Equal(t, d, rec.TunnelBridgeDirection())
	}

	tunnel := tileOfKind(KindMisc, subMiscTunnel)
	sb(&tunnel.M3, 6, 2, uint8(DiagDirSW))
	require.Equal(t, DiagDirSW, tunnel.TunnelBridgeDirection())

	ground := tileOfKind(KindGround, 0)
	require.Panics(t, func() { ground.TunnelBridgeDirection() })
}

// Aliased slices must stay unreachable through the wrong kind: every
// road accessor traps on a house tile even though it would read the
// same physical bytes the house stores its random bits in.
func TestAliasedBitSafety(t *testing.T) {
	house := tileOfKind(KindHouse, 0)
	house.SetRandomBits(0xFF)

	require.Panics(t, func() { house.RoadBits(RoadTypeRoad) })
	require.Panics(t, func() { house.AllRoadBits() })
	require.Panics(t, func() { house.SetRoadBits(RoadTypeRoad, RoadBitsAll) })
	require.Panics(t, func() { house.AnyRoadBits(RoadTypeRoad, false) })
	require.Panics(t, func() { house.RoadTypes() })
	require.Panics(t, func() { house.SetRoadTypes(RoadTypesAll) })
	require.Panics(t, func() { house.RoadOwner(RoadTypeRoad) })
	require.Panics(t, func() { house.SetRoadOwner(RoadTypeTram, OwnerTown) })
	require.Panics(t, func() { house.Roadside() })
	require.Panics(t, func() { house.SetRoadside(RoadsidePaved) })
	require.Panics(t, func() { house.HasRoadWorks() })
	require.Panics(t, func() { house.StartRoadWorks() })
	require.Panics(t, func() { house.DisallowedRoadDirections() })
	require.Panics(t, func() { house.RoadBridgeType() })
	require.Panics(t, func() { house.IsExtendedRoadBridge() })
	require.Panics(t, func() { house.CrossingRoadAxis() })
	require.Panics(t, func() { house.HasCrossingReservation() })
	require.Panics(t, func() { house.IsCrossingBarred() })

	require.Equal(t, uint8(0xFF), house.RandomBits())
}
