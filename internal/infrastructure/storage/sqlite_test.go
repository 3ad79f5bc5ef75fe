package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveRun(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	got, err := store.SaveRun(Run{ID: id, Score: 4200, Level: 2, Status: "won", Ticks: 9000, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	generated, err := store.SaveRun(Run{Score: 100, Level: 1, Status: "gameover"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated)

	_, err = store.SaveRun(Run{ID: id, Score: 1, Level: 1, Status: "won"})
	assert.Error(t, err, "duplicate run id")
}

func TestStore_TopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 1200, 50, 800} {
		_, err := store.SaveRun(Run{Score: score, Level: 1, Status: "gameover", Ticks: 60})
		require.NoError(t, err)
	}

	runs, err := store.TopRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 1200, runs[0].Score)
	assert.Equal(t, 800, runs[1].Score)
	assert.Equal(t, 300, runs[2].Score)
	assert.Equal(t, uint64(60), runs[0].Ticks)
	assert.Equal(t, "gameover", runs[0].Status)

	all, err := store.TopRuns(0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestStore_HighScore(t *testing.T) {
	store := openTestStore(t)

	_, err := store.HighScore()
	assert.ErrorIs(t, err, ErrNoRuns)

	_, err = store.SaveRun(Run{Score: 640, Level: 1, Status: "gameover"})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Score: 910, Level: 2, Status: "won"})
	require.NoError(t, err)

	best, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 910, best)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Score: 77, Level: 1, Status: "won"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	best, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 77, best)
}
