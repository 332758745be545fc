package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsVoid(t *testing.T) {
	var rec Tile
	require.True(t, rec.IsVoid())
	require.Equal(t, KindVoid, rec.Kind())
}

func TestKindExclusivity(t *testing.T) {
	preds := map[string]func(*Tile) bool{
		"void":     (*Tile).IsVoid,
		"ground":   (*Tile).IsGround,
		"rail":     (*Tile).IsRail,
		"road":     (*Tile).IsRoad,
		"misc":     (*Tile).IsMisc,
		"water":    (*Tile).IsWater,
		"house":    (*Tile).IsHouse,
		"industry": (*Tile).IsIndustry,
		"object":   (*Tile).IsObject,
		"station":  (*Tile).IsStation,
	}

	for kind := KindVoid; kind < kindCount; kind++ {
		var rec Tile
		rec.setHeader(kind, 0)

		matched := 0
		for name, pred := range preds {
			if pred(&rec) {
				matched++
				require.Equal(t, kind.String(), name)
			}
		}
		require.Equal(t, 1, matched, "kind %v must satisfy exactly one predicate", kind)
	}
}

func TestRoadSubkinds(t *testing.T) {
	var rec Tile

	rec.MakeRoadNormal(RoadBitsX, RoadTypesRoad, 0, OwnerNone, OwnerNone)
	require.True(t, rec.IsNormalRoad())
	require.False(t, rec.IsRoadBridge())
	require.False(t, rec.IsLevelCrossing())
	require.False(t, rec.IsBridge())

	rec.MakeRoadBridgeRamp(OwnerNone, OwnerNone, 0, DiagDirNE, RoadTypesRoad, 0)
	require.True(t, rec.IsRoadBridge())
	require.True(t, rec.IsBridge())
	require.False(t, rec.IsNormalRoad())

	rec.MakeRoadCrossing(OwnerNone, OwnerNone, OwnerNone, AxisX, 0, RoadTypesRoad, 0)
	require.True(t, rec.IsLevelCrossing())
	require.False(t, rec.IsBridge())
}

func TestTunnelClassification(t *testing.T) {
	var rec Tile
	rec.setHeader(KindMisc, subMiscTunnel)
	require.True(t, rec.IsTunnel())
	require.True(t, rec.IsMisc())

	rec.setHeader(KindMisc, subMiscDepot)
	require.False(t, rec.IsTunnel())
}

func TestMakeHeader(t *testing.T) {
	var rec Tile
	rec.setHeader(KindRoad, subRoadCrossing)
	require.Equal(t, rec.Header, MakeHeader(KindRoad, subRoadCrossing))
}

func TestLifecycleConstructors(t *testing.T) {
	rec := Tile{M1: 0xFF, M2: 0xFF, M3: 0xFF, M4: 0xFF, M5: 0xFF, M6: 0xFF, M7: 0xFF, M8: 0xFF}
	rec.setHeader(KindHouse, 0)

	rec.MakeGround()
	require.True(t, rec.IsGround())
	require.Equal(t, OwnerNone, rec.Owner())

	rec.MakeVoid()
	require.Equal(t, Tile{}, rec)
}
