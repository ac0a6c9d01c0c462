package artifact

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/eograph"
	"github.com/SeamusWaldron/eograph/internal/storage"
)

// SQLiteStore keeps graphs as rows in the eograph database.
type SQLiteStore struct {
	db     *storage.DB
	graphs *storage.GraphRepository
	owned  bool
}

// OpenSQLite opens (or creates) the database at path, applies migrations
// and returns a store that closes the database on Close.
// An empty path selects the default database location.
func OpenSQLite(path string) (*SQLiteStore, error) {
	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := NewSQLiteStore(db)
	s.owned = true
	return s, nil
}

// NewSQLiteStore wraps an already migrated database. Close leaves db open.
func NewSQLiteStore(db *storage.DB) *SQLiteStore {
	return &SQLiteStore{db: db, graphs: storage.NewGraphRepository(db)}
}

// DB returns the underlying database.
func (s *SQLiteStore) DB() *storage.DB {
	return s.db
}

// Save stores g in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, g *eograph.Graph) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.graphs.Create(g)
}

// Load reads the graph stored under id.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*eograph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := s.graphs.Get(id)
	switch {
	case errors.Is(err, storage.ErrGraphNotFound):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case errors.Is(err, storage.ErrCorruptGraph):
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	case err != nil:
		return nil, err
	}
	return g, nil
}

// Latest returns the ID of the newest stored graph.
func (s *SQLiteStore) Latest(ctx context.Context) (string, error) {
	rec, err := s.graphs.GetLast()
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrNotFound
	}
	return rec.GraphID, nil
}

// Close closes the database if the store opened it.
func (s *SQLiteStore) Close() error {
	if s.owned {
		return s.db.Close()
	}
	return nil
}
