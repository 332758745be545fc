package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"

	"github.com/eak1mov/go-gridmap/dump"
	"github.com/eak1mov/go-gridmap/grid"
	"github.com/eak1mov/go-gridmap/tile"
)

func TestConvertReencodesDump(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.gmap")
	outputPath := filepath.Join(dir, "out.gmap")

	m := grid.New(8, 8)
	m.Tile(m.TileXY(2, 3)).MakeRoadNormal(
		tile.RoadBitsX, tile.RoadTypesRoad, 1, tile.Owner(5), tile.OwnerNone)
	require.NoError(t, dump.WriteFile(inputPath, m))

	cmd := convertCmd{inputPath: inputPath, outputPath: outputPath, compression: "none"}
	require.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), nil))

	headerData, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	header, err := dump.DeserializeHeader(headerData[:dump.HeaderLength])
	require.NoError(t, err)
	require.Equal(t, dump.CompressionNone, header.Compression)

	converted, err := dump.ReadFile(outputPath)
	require.NoError(t, err)
	for i, rec := range m.Tiles() {
		if diff := cmp.Diff(*rec, *converted.Tile(i)); diff != "" {
			t.Errorf("tile %v mismatch (-want+got):\n%v", i, diff)
		}
	}
}

func TestConvertRejectsUnknownCompression(t *testing.T) {
	cmd := convertCmd{inputPath: "in", outputPath: "out", compression: "brotli"}
	require.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), nil))
}
