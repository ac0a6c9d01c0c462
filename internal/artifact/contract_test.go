package artifact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/eograph"
)

// runStoreContract exercises the behavior every backend must share.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Latest(ctx)
	assert.True(t, errors.Is(err, ErrNotFound), "empty store Latest: %v", err)

	_, err = s.Load(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.Is(err, ErrNotFound), "missing Load: %v", err)

	small := eograph.NewGraph()
	small.AddNode(eograph.Solved)
	firstID, err := s.Save(ctx, small)
	require.NoError(t, err)

	g := eograph.BuildGraph()
	id, err := s.Save(ctx, g)
	require.NoError(t, err)
	require.NotEqual(t, firstID, id)

	latest, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, latest)

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.True(t, g.Equal(loaded), "reloaded graph differs from built graph")
	assert.NoError(t, loaded.Validate(18))

	_, rep, err := eograph.Analyze(loaded)
	require.NoError(t, err)
	assert.Equal(t, 7, rep.MaxLength)

	first, err := s.Load(ctx, firstID)
	require.NoError(t, err)
	assert.True(t, small.Equal(first))

	latestID, latestGraph, err := LoadLatest(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, id, latestID)
	assert.Equal(t, g.NumArcs(), latestGraph.NumArcs())
}
