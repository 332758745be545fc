package dump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eak1mov/go-gridmap/curve"
	"github.com/eak1mov/go-gridmap/grid"
	"github.com/eak1mov/go-gridmap/tile"
)

// Read deserializes a world dump from r into a fresh map.
func Read(r io.Reader) (*grid.Map, error) {
	headerData := make([]byte, HeaderLength)
	if _, err := io.ReadFull(r, headerData); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	header, err := DeserializeHeader(headerData)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := header.Compression.decompress(payload)
	if err != nil {
		return nil, err
	}

	sizeX, sizeY := uint(header.SizeX), uint(header.SizeY)
	if len(data) != int(sizeX*sizeY)*RecordLength {
		return nil, fmt.Errorf("%w: %d payload bytes for %dx%d map",
			ErrCorruptPayload, len(data), sizeX, sizeY)
	}

	records := make([]tile.Tile, sizeX*sizeY)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, records); err != nil {
		return nil, err
	}

	m := grid.New(sizeX, sizeY)
	c := curve.ForMap(sizeX, sizeY)
	next := 0
	for code := range c.Len() {
		x, y := c.Pos(code)
		if x < sizeX && y < sizeY {
			*m.Tile(m.TileXY(x, y)) = records[next]
			next++
		}
	}

	return m, nil
}

// ReadFile deserializes a world dump from the file at the given path.
func ReadFile(filePath string) (*grid.Map, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	m, err := Read(file)
	if err != nil {
		return nil, errors.Join(err, file.Close())
	}
	return m, file.Close()
}
