package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/eograph"
)

// latestFile names the pointer file holding the newest graph ID.
const latestFile = "LATEST"

// FileStore keeps one JSON document per graph in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store in dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("artifact: file store needs a directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes g to <dir>/<id>.json and marks it as the latest graph.
// Files are written to a temporary name and renamed into place.
func (s *FileStore) Save(ctx context.Context, g *eograph.Graph) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := Encode(g)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := writeFileAtomic(s.path(id), data); err != nil {
		return "", fmt.Errorf("failed to write graph: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, latestFile), []byte(id+"\n")); err != nil {
		return "", fmt.Errorf("failed to update latest pointer: %w", err)
	}
	return id, nil
}

// Load reads and decodes <dir>/<id>.json.
func (s *FileStore) Load(ctx context.Context, id string) (*eograph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q is not a graph id", ErrNotFound, id)
	}

	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	return Decode(data)
}

// Latest returns the ID recorded by the last Save.
func (s *FileStore) Latest(ctx context.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, latestFile))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read latest pointer: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
