package artifact

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/eograph"
)

func TestSQLiteStore_Contract(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "eograph.db"))
	require.NoError(t, err)
	defer s.Close()

	runStoreContract(t, s)
}

func TestSQLiteStoreCorruptRows(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "eograph.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	id, err := s.Save(ctx, eograph.BuildGraph())
	require.NoError(t, err)

	_, err = s.DB().Exec("DELETE FROM graph_arcs WHERE graph_id = ? AND arc_index = 0", id)
	require.NoError(t, err)

	_, err = s.Load(ctx, id)
	assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Config{Kind: "tape"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}
