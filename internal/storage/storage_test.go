package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/eograph"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "eograph.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.MigrateUp())

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestGraphRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewGraphRepository(db)
	g := eograph.BuildGraph()

	id, err := repo.Create(g)
	require.NoError(t, err)

	loaded, err := repo.Get(id)
	require.NoError(t, err)
	assert.True(t, g.Equal(loaded), "reloaded graph differs from built graph")

	rec, err := repo.GetRecord(id)
	require.NoError(t, err)
	assert.Equal(t, eograph.NumStates, rec.NodeCount)
	assert.Equal(t, eograph.NumStates*18, rec.ArcCount)
}

func TestGraphNotFound(t *testing.T) {
	repo := NewGraphRepository(openTestDB(t))

	_, err := repo.Get("missing")
	assert.True(t, errors.Is(err, ErrGraphNotFound))

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestGraphCorruptRowsFailFast(t *testing.T) {
	db := openTestDB(t)
	repo := NewGraphRepository(db)

	g := eograph.NewGraph()
	g.AddArc(eograph.Solved, eograph.Arc{
		Move:   eograph.Move{Face: eograph.FaceF, Turn: eograph.CW},
		Target: eograph.StateFromFree(15),
	})
	g.AddNode(eograph.StateFromFree(15))
	id, err := repo.Create(g)
	require.NoError(t, err)

	_, err = db.Exec("UPDATE graph_arcs SET label = 'Q' WHERE graph_id = ?", id)
	require.NoError(t, err)

	_, err = repo.Get(id)
	assert.True(t, errors.Is(err, ErrCorruptGraph), "got %v", err)
}

func TestGraphListNewestFirst(t *testing.T) {
	repo := NewGraphRepository(openTestDB(t))
	small := eograph.NewGraph()
	small.AddNode(eograph.Solved)

	first, err := repo.Create(small)
	require.NoError(t, err)
	second, err := repo.Create(small)
	require.NoError(t, err)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].GraphID)
	assert.Equal(t, first, list[1].GraphID)

	require.NoError(t, repo.Delete(second))
	last, err := repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, first, last.GraphID)
}

func TestAnalysisRoundTrip(t *testing.T) {
	db := openTestDB(t)
	g := eograph.BuildGraph()
	graphID, err := NewGraphRepository(db).Create(g)
	require.NoError(t, err)

	_, rep, err := eograph.Analyze(g)
	require.NoError(t, err)

	repo := NewAnalysisRepository(db)
	id, err := repo.Create(graphID, rep)
	require.NoError(t, err)

	a, err := repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, id, a.AnalysisID)
	assert.Equal(t, graphID, a.GraphID)
	assert.Equal(t, 7, a.MaxLength)
	assert.Equal(t, eograph.NumStates, a.Reachable)
	assert.Equal(t, "000000000000", a.Start)
	require.Len(t, a.Farthest, len(rep.Farthest))
	for i, w := range rep.Farthest {
		assert.Equal(t, w.State.String(), a.Farthest[i].State)
		assert.Equal(t, w.Moves, a.Farthest[i].Moves)
	}

	n, err := repo.Count(graphID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
