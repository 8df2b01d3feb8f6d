package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jacksmith/plantpal/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plants.db")
	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s, path
}

func date(s string) time.Time {
	t, _ := time.Parse(model.DateLayout, s)
	return t
}

func samplePlants() []model.Plant {
	return []model.Plant{
		{ID: "z-last-id", Name: "Monstera", WaterIntervalDays: 7, Sunlight: model.SunlightMedium, ImagePath: "m.jpg", LastWatered: date("2024-01-01")},
		{ID: "a-first-id", Name: "Cactus", WaterIntervalDays: 21, Sunlight: model.SunlightHigh, LastWatered: date("2023-12-24")},
		{ID: "m-mid-id", Name: "Cactus", WaterIntervalDays: 14, Sunlight: model.SunlightLow, LastWatered: date("2024-01-05")},
	}
}

func TestMigrationsApply(t *testing.T) {
	s, _ := openTestStore(t)

	var tableName string
	err := s.conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='plants'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "plants", tableName)

	var version int
	err = s.conn.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	// Re-running is a no-op
	require.NoError(t, runMigrations(s.conn))
}

func TestEmptyDatabaseLoadsNothing(t *testing.T) {
	s, _ := openTestStore(t)

	plants, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Save(samplePlants()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, samplePlants(), got)
}

func TestSaveReplacesRows(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Save(samplePlants()))
	require.NoError(t, s.Save(samplePlants()[1:2]))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a-first-id", got[0].ID)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.db")

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save(samplePlants()))
	require.NoError(t, s.Close())

	s, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, samplePlants(), got)
}

func TestSaveRejectsInvalidRowsAtomically(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Save(samplePlants()))

	bad := append(samplePlants()[:1], model.Plant{ID: "bad", Name: "Zero", WaterIntervalDays: 0, Sunlight: model.SunlightLow})
	err := s.Save(bad)

	var serr *model.StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "save", serr.Op)

	// Transaction rolled back; previous rows intact
	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSaveDuplicateIDsFails(t *testing.T) {
	s, _ := openTestStore(t)
	plants := samplePlants()
	plants[1].ID = plants[0].ID

	assert.Error(t, s.Save(plants))
}
