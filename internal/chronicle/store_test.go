package chronicle_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"althistory/internal/chronicle"
	"althistory/internal/model"
)

func newTestStore(t *testing.T) *chronicle.Store {
	t.Helper()
	store, err := chronicle.Open(filepath.Join(t.TempDir(), "chronicles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		_, err := chronicle.Open("  ")
		require.Error(t, err)
	})

	t.Run("reopening an existing database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chronicles.db")

		store, err := chronicle.Open(path)
		require.NoError(t, err)
		require.NoError(t, store.Append(context.Background(), model.ChronicleEntry{
			ScenarioID:     "black_death",
			ScenarioName:   "The Black Death Prevention",
			FinalSituation: "Genoa is spared.",
		}))
		require.NoError(t, store.Close())

		store, err = chronicle.Open(path)
		require.NoError(t, err)
		defer store.Close()

		entries, err := store.List(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "black_death", entries[0].ScenarioID)
	})
}

func TestAppendAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	first := model.ChronicleEntry{
		ID:             "entry-1",
		ScenarioID:     "library_alexandria",
		ScenarioName:   "The Library of Alexandria",
		CompletedAt:    base,
		Decisions:      4,
		FinalSituation: "The library stands for another millennium.",
		Alterations:    []string{"The scrolls are copied", "Alexandria becomes a university city"},
		Choices:        []string{"Evacuate the scrolls", "Fund the copyists"},
	}
	second := model.ChronicleEntry{
		ID:             "entry-2",
		ScenarioID:     "d_day_weather",
		ScenarioName:   "D-Day: The Weather Decision",
		CompletedAt:    base.Add(time.Hour),
		Decisions:      2,
		FinalSituation: "The invasion lands a month late.",
	}
	third := model.ChronicleEntry{
		ID:             "entry-3",
		ScenarioID:     "mongol_europe",
		ScenarioName:   "Mongol Invasion of Europe",
		CompletedAt:    base.Add(2 * time.Hour),
		Decisions:      6,
		FinalSituation: "The horde turns back east.",
		Alterations:    []string{"Europe rearms"},
	}
	for _, entry := range []model.ChronicleEntry{first, second, third} {
		require.NoError(t, store.Append(ctx, entry))
	}

	t.Run("newest first", func(t *testing.T) {
		entries, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "entry-3", entries[0].ID)
		assert.Equal(t, "entry-2", entries[1].ID)
		assert.Equal(t, "entry-1", entries[2].ID)
	})

	t.Run("fields round-trip", func(t *testing.T) {
		entries, err := store.List(ctx, 0)
		require.NoError(t, err)

		got := entries[2]
		assert.Equal(t, first.ScenarioID, got.ScenarioID)
		assert.Equal(t, first.ScenarioName, got.ScenarioName)
		assert.True(t, got.CompletedAt.Equal(first.CompletedAt))
		assert.Equal(t, first.Decisions, got.Decisions)
		assert.Equal(t, first.FinalSituation, got.FinalSituation)
		assert.Equal(t, first.Alterations, got.Alterations)
		assert.Equal(t, first.Choices, got.Choices)

		assert.Empty(t, entries[1].Alterations)
		assert.Empty(t, entries[1].Choices)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		entries, err := store.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "entry-3", entries[0].ID)
		assert.Equal(t, "entry-2", entries[1].ID)
	})
}

func TestAppendFillsDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, model.ChronicleEntry{
		ScenarioID:     "pearl_harbor_warning",
		ScenarioName:   "The Pearl Harbor Intelligence",
		FinalSituation: "The fleet was at sea.",
	}))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].CompletedAt, time.Minute)
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
