package dump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/eak1mov/go-gridmap/curve"
	"github.com/eak1mov/go-gridmap/grid"
	"github.com/eak1mov/go-gridmap/tile"
)

type writeConfig struct {
	Compression Compression
	Logger      *slog.Logger
}

type WriteOption func(*writeConfig)

func WithCompression(c Compression) WriteOption {
	return func(cfg *writeConfig) { cfg.Compression = c }
}

func WithLogger(logger *slog.Logger) WriteOption {
	return func(cfg *writeConfig) { cfg.Logger = logger }
}

// Write serializes the map to w: header, then all records in Hilbert
// scan order.
func Write(w io.Writer, m *grid.Map, opts ...WriteOption) error {
	config := writeConfig{
		Compression: CompressionGzip,
		Logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	records := scanOrder(m)

	var payload bytes.Buffer
	if err := binary.Write(&payload, binary.LittleEndian, records); err != nil {
		return err
	}

	data, err := config.Compression.compress(payload.Bytes())
	if err != nil {
		return err
	}

	header := Header{
		HeaderMagic: HeaderMagicV1,
		SizeX:       uint32(m.SizeX()),
		SizeY:       uint32(m.SizeY()),
		Compression: config.Compression,
	}
	if _, err := w.Write(SerializeHeader(&header)); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	config.Logger.Info("wrote world dump",
		"size_x", m.SizeX(), "size_y", m.SizeY(), "payload_bytes", len(data))

	return nil
}

// WriteFile serializes the map to a file at the given path.
func WriteFile(filePath string, m *grid.Map, opts ...WriteOption) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err := Write(file, m, opts...); err != nil {
		return errors.Join(err, file.Close())
	}
	return file.Close()
}

// scanOrder flattens the map into Hilbert code order. For
// non-square maps, curve positions outside the grid are skipped.
func scanOrder(m *grid.Map) []tile.Tile {
	c := curve.ForMap(m.SizeX(), m.SizeY())
	records := make([]tile.Tile, 0, m.Len())
	for code := range c.Len() {
		x, y := c.Pos(code)
		if x < m.SizeX() && y < m.SizeY() {
			records = append(records, *m.Tile(m.TileXY(x, y)))
		}
	}
	return records
}
