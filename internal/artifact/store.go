// Package artifact persists the transition graph between the build and
// analyze stages. Every backend round-trips a graph losslessly: node
// order, arc order, labels and targets.
package artifact

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/eograph"
)

// Sentinel errors for artifact operations.
var (
	// ErrNotFound is returned when a requested graph does not exist.
	ErrNotFound = errors.New("artifact: graph not found")

	// ErrCorrupt is returned when stored data does not decode to a valid graph.
	ErrCorrupt = errors.New("artifact: graph data is corrupt")

	// ErrUnknownBackend is returned by Open for an unsupported kind.
	ErrUnknownBackend = errors.New("artifact: unknown store backend")
)

// Store saves and loads transition graphs.
type Store interface {
	// Save persists g and returns the ID it was stored under.
	Save(ctx context.Context, g *eograph.Graph) (string, error)

	// Load returns the graph stored under id.
	Load(ctx context.Context, id string) (*eograph.Graph, error)

	// Latest returns the ID of the most recently saved graph,
	// or ErrNotFound if none has been saved.
	Latest(ctx context.Context) (string, error)

	// Close releases the backend's resources.
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Kind      string
	DBPath    string // sqlite
	Dir       string // file
	RedisAddr string // redis
	RedisDB   int    // redis
}

// Open creates the store described by cfg.
func Open(cfg Config) (Store, error) {
	switch cfg.Kind {
	case KindSQLite, "":
		s, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindFile:
		s, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisDB), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Kind)
	}
}

// LoadLatest loads the most recently saved graph and returns it with its ID.
func LoadLatest(ctx context.Context, s Store) (string, *eograph.Graph, error) {
	id, err := s.Latest(ctx)
	if err != nil {
		return "", nil, err
	}
	g, err := s.Load(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return id, g, nil
}
