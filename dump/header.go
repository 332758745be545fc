// Package dump implements the gridmap world snapshot format: a fixed
// binary header followed by the tile records in Hilbert scan order,
// optionally gzip-compressed. It is the library's tool format; the
// simulation's own save format lives elsewhere.
package dump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

type Compression uint8

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
)

type Header struct {
	HeaderMagic uint64
	SizeX       uint32
	SizeY       uint32
	Compression Compression
}

const (
	headerMagic     uint64 = 0x50414D44495247 // "GRIDMAP"
	headerMagicMask uint64 = 1<<56 - 1
	HeaderMagicV1   uint64 = headerMagic | (0x01 << 56)

	HeaderLength = 17

	// RecordLength is the packed size of one tile record in the
	// payload; bumping it means a new format version.
	RecordLength = 9

	// Dimensions are powers of two; this caps them so a corrupt
	// header cannot demand an absurd allocation.
	MaxSize = 1 << 16
)

var ErrInvalidHeader = errors.New("invalid dump header")
var ErrInvalidVersion = errors.New("invalid dump version")
var ErrCorruptPayload = errors.New("corrupt dump payload")

func SerializeHeader(header *Header) []byte {
	var buffer bytes.Buffer
	binary.Write(&buffer, binary.LittleEndian, header)
	return buffer.Bytes()
}

func DeserializeHeader(buffer []byte) (*Header, error) {
	header := Header{}
	err := binary.Read(bytes.NewReader(buffer), binary.LittleEndian, &header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if header.HeaderMagic&headerMagicMask != headerMagic {
		return nil, ErrInvalidHeader
	}
	if header.HeaderMagic != HeaderMagicV1 {
		return nil, ErrInvalidVersion
	}
	if !validSize(header.SizeX) || !validSize(header.SizeY) {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d", ErrInvalidHeader, header.SizeX, header.SizeY)
	}
	if header.Compression != CompressionNone && header.Compression != CompressionGzip {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, header.Compression)
	}
	return &header, nil
}

func validSize(n uint32) bool {
	return n > 0 && n <= MaxSize && n&(n-1) == 0
}
