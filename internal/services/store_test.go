package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/engine"
	"github.com/jstittsworth/gridiron-gm/internal/models"
	"github.com/jstittsworth/gridiron-gm/pkg/database"
)

func testStore(t *testing.T) *SaveStore {
	t.Helper()
	db, err := database.NewConnection("file::memory:?cache=shared", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSaveStore(db)
	require.NoError(t, err)

	// In-memory databases linger between tests on the shared cache
	db.Where("1 = 1").Delete(&models.Save{})
	return store
}

func testState(t *testing.T) *engine.State {
	t.Helper()
	state, err := engine.Initialize(42, "BUF")
	require.NoError(t, err)
	return state
}

func TestSaveStoreRoundTrip(t *testing.T) {
	store := testStore(t)
	state := testState(t)

	save, err := store.Create("my franchise", state)
	require.NoError(t, err)
	assert.NotZero(t, save.ID)
	assert.Equal(t, "BUF", save.UserTeamID)
	assert.Equal(t, 2026, save.Season)

	loaded, err := store.Load(save.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Seed, loaded.Seed)
	assert.Equal(t, state.CurrentWeek, loaded.CurrentWeek)
	assert.Len(t, loaded.Rosters, 32)
}

func TestSaveStoreUpdate(t *testing.T) {
	store := testStore(t)
	state := testState(t)

	save, err := store.Create("slot", state)
	require.NoError(t, err)

	advanced, _, err := state.AdvanceWeek()
	require.NoError(t, err)
	require.NoError(t, store.Update(save.ID, advanced))

	loaded, err := store.Load(save.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CurrentWeek)

	assert.ErrorIs(t, store.Update(9999, advanced), ErrNoSave)
}

func TestSaveStoreMissing(t *testing.T) {
	store := testStore(t)
	_, err := store.Load(12345)
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSaveStoreCorruptBlob(t *testing.T) {
	store := testStore(t)
	state := testState(t)

	save, err := store.Create("slot", state)
	require.NoError(t, err)

	// Clobber the blob; loading must behave like a missing save
	require.NoError(t, store.db.Model(&models.Save{}).
		Where("id = ?", save.ID).
		Update("state", []byte("{not json")).Error)

	_, err = store.Load(save.ID)
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSaveStoreListAndDelete(t *testing.T) {
	store := testStore(t)
	state := testState(t)

	first, err := store.Create("one", state)
	require.NoError(t, err)
	_, err = store.Create("two", state)
	require.NoError(t, err)

	saves, err := store.List()
	require.NoError(t, err)
	assert.Len(t, saves, 2)
	for _, s := range saves {
		assert.Nil(t, s.State, "listing must not carry state blobs")
	}

	require.NoError(t, store.Delete(first.ID))
	saves, err = store.List()
	require.NoError(t, err)
	assert.Len(t, saves, 1)
}
