package usagefile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "history.json"))

	stats, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, stats)
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home", "history.json")
	store := NewStore(path)

	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	want := &domain.UsageStatistics{
		LastSaved:      day.Add(90 * time.Minute),
		BackUpInterval: 5 * time.Minute,
		Endpoints: map[string]*domain.History{
			domain.UsageGetAllField: {Data: []domain.CountPerDay{
				{Date: day, Count: 12},
				{Date: day.AddDate(0, 0, 1), Count: 3},
			}},
		},
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "history.json"))

	first := domain.NewUsageStatistics(time.Minute)
	first.Increment(domain.UsagePostField, time.Now())
	require.NoError(t, store.Save(first))

	second := domain.NewUsageStatistics(time.Minute)
	require.NoError(t, store.Save(second))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Endpoints)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "decode usage snapshot")
}
