// Package worlddb provides sqlite-backed export and import of a world
// map for offline inspection: one row per tile, with the kind and the
// raw attribute bytes in separate columns so the database is easy to
// query by hand.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package worlddb

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-gridmap/tile"
)

// Writer writes tiles of one world into a sqlite database.
type Writer struct {
	db     *sql.DB
	tx     *sql.Tx
	stmt   *sql.Stmt
	logger *slog.Logger
	count  int
}

type writerConfig struct {
	Logger *slog.Logger
}

type WriterOption func(*writerConfig)

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a database at filePath and initializes the schema
// for a sizeX by sizeY world. All tile inserts run in one transaction
// committed by Finalize.
func NewWriter(filePath string, sizeX, sizeY uint, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			x INTEGER,
			y INTEGER,
			kind INTEGER,
			subkind INTEGER,
			m1 INTEGER, m2 INTEGER, m3 INTEGER, m4 INTEGER,
			m5 INTEGER, m6 INTEGER, m7 INTEGER, m8 INTEGER
		);
	`)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("INSERT INTO metadata (name, value) VALUES ('size_x', ?), ('size_y', ?)",
		fmt.Sprint(sizeX), fmt.Sprint(sizeY))
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tiles (x, y, kind, subkind, m1, m2, m3, m4, m5, m6, m7, m8)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}

	return &Writer{db: db, tx: tx, stmt: stmt, logger: config.Logger}, nil
}

// WriteTile writes a single tile record at the given coordinates.
func (w *Writer) WriteTile(x, y uint, t *tile.Tile) error {
	_, err := w.stmt.Exec(x, y, uint8(t.Kind()), t.Subkind(),
		t.M1, t.M2, t.M3, t.M4, t.M5, t.M6, t.M7, t.M8)
	if err != nil {
		return err
	}
	w.count++
	return nil
}

// Finalize commits the tile transaction and builds the lookup index.
// It must be called before closing the Writer.
func (w *Writer) Finalize() error {
	if err := w.stmt.Close(); err != nil {
		return err
	}
	if err := w.tx.Commit(); err != nil {
		return err
	}
	if _, err := w.db.Exec("CREATE UNIQUE INDEX tile_index ON tiles (x, y)"); err != nil {
		return err
	}

	w.logger.Info("wrote world database", "tiles", w.count)

	return nil
}

func (w *Writer) Close() error {
	return w.db.Close()
}
