package worlddb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/eak1mov/go-gridmap/grid"
	"github.com/eak1mov/go-gridmap/tile"
)

var ErrInvalidMetadata = errors.New("invalid world metadata")

// Reader reads a world map back out of a sqlite database.
type Reader struct {
	db *sql.DB
}

// NewReader opens the database at filePath read-only.
//
// The returned Reader must be closed after use to release database
// resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	return &Reader{db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

func (r *Reader) size() (sizeX, sizeY uint, err error) {
	metadata, err := r.ReadMetadata()
	if err != nil {
		return 0, 0, err
	}

	parse := func(name string) (uint, error) {
		value, err := strconv.ParseUint(metadata[name], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidMetadata, name, err)
		}
		if value == 0 || value&(value-1) != 0 {
			return 0, fmt.Errorf("%w: %s = %d is not a power of two", ErrInvalidMetadata, name, value)
		}
		return uint(value), nil
	}

	if sizeX, err = parse("size_x"); err != nil {
		return 0, 0, err
	}
	if sizeY, err = parse("size_y"); err != nil {
		return 0, 0, err
	}
	return sizeX, sizeY, nil
}

// ReadMap reconstructs the whole world from the database.
func (r *Reader) ReadMap() (*grid.Map, error) {
	sizeX, sizeY, err := r.size()
	if err != nil {
		return nil, err
	}
	m := grid.New(sizeX, sizeY)

	rows, err := r.db.Query("SELECT x, y, kind, subkind, m1, m2, m3, m4, m5, m6, m7, m8 FROM tiles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var x, y uint
		var kind, subkind uint8
		var rec tile.Tile

		err := rows.Scan(&x, &y, &kind, &subkind,
			&rec.M1, &rec.M2, &rec.M3, &rec.M4, &rec.M5, &rec.M6, &rec.M7, &rec.M8)
		if err != nil {
			return nil, err
		}
		if x >= sizeX || y >= sizeY {
			return nil, fmt.Errorf("%w: tile (%d, %d) outside %dx%d map",
				ErrInvalidMetadata, x, y, sizeX, sizeY)
		}

		rec.Header = tile.MakeHeader(tile.Kind(kind), subkind)
		*m.Tile(m.TileXY(x, y)) = rec
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return m, nil
}
