package dump

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// The dump payload knows exactly two encodings: raw records and gzip.
// Anything else fails header validation before these run.

func (c Compression) compress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		var buffer bytes.Buffer
		writer, _ := gzip.NewWriterLevel(&buffer, gzip.BestCompression)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("failed to compress payload: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("failed to compress payload: %w", err)
		}
		return buffer.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: compression %d", ErrInvalidHeader, c)
	}
}

func (c Compression) decompress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
		}
		defer reader.Close()
		result, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: compression %d", ErrInvalidHeader, c)
	}
}
