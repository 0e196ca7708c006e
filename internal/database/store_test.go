package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

// newTestStore returns a store seeded with the sample catalog.
func newTestStore(t *testing.T) *DBService {
	t.Helper()
	svc, err := NewDBService(trail.Catalog())
	require.NoError(t, err, "NewDBService")
	t.Cleanup(func() { svc.Close() })
	return svc
}

func ids(trails []trail.Trail) []string {
	out := make([]string, len(trails))
	for i, t := range trails {
		out[i] = t.ID
	}
	return out
}

// TestListTrailsPreservesCatalog verifies that seeding and reading
// back round-trips every field in catalog order.
func TestListTrailsPreservesCatalog(t *testing.T) {
	svc := newTestStore(t)

	trails, err := svc.ListTrails()
	require.NoError(t, err)
	assert.Equal(t, trail.Catalog(), trails)
}

// TestQueryTrailsAgreesWithFilter checks the SQL category filter
// against the pure filter for every category.
func TestQueryTrailsAgreesWithFilter(t *testing.T) {
	svc := newTestStore(t)

	for _, category := range trail.Categories() {
		got, err := svc.QueryTrails(TrailFilter{Category: category})
		require.NoError(t, err, category)

		want := trail.Filter(trail.Catalog(), category)
		assert.Equal(t, ids(want), ids(got), "category %s", category)
	}
}

func TestQueryTrailsDifficultyAndRating(t *testing.T) {
	svc := newTestStore(t)

	easy := trail.Easy
	got, err := svc.QueryTrails(TrailFilter{Difficulty: &easy})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, ids(got))

	got, err = svc.QueryTrails(TrailFilter{Category: trail.Hiking, MinRating: 4.8})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6"}, ids(got))

	got, err = svc.QueryTrails(TrailFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestGetTrail(t *testing.T) {
	svc := newTestStore(t)

	got, err := svc.GetTrail("5")
	require.NoError(t, err)
	assert.Equal(t, "Crystal Caverns", got.Title)
	assert.Equal(t, trail.Caves, got.Category)
	assert.Equal(t, trail.Moderate, got.Difficulty)

	_, err = svc.GetTrail("missing")
	assert.True(t, errors.Is(err, ErrTrailNotFound), "got %v", err)
}

func TestCategoryCounts(t *testing.T) {
	svc := newTestStore(t)

	counts, err := svc.CategoryCounts()
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Category: trail.All, Count: 6},
		{Category: trail.Hiking, Count: 3},
		{Category: trail.Mountains, Count: 1},
		{Category: trail.Rivers, Count: 1},
		{Category: trail.Caves, Count: 1},
	}, counts)
}

func TestGetCatalogStats(t *testing.T) {
	svc := newTestStore(t)

	stats, err := svc.GetCatalogStats()
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalTrails)
	assert.InDelta(t, 4.65, stats.AverageRating, 0.001)
	assert.Equal(t, 4.9, stats.MaxRating)
	assert.Equal(t, []string{"Mountain Peak Ascent", "Redwood Giants Trail"}, stats.TopRated)
	assert.Equal(t, map[trail.Difficulty]int{
		trail.Easy:     3,
		trail.Moderate: 2,
		trail.Hard:     1,
	}, stats.ByDifficulty)
}

// TestEmptyCatalog verifies the store stays usable with nothing seeded.
func TestEmptyCatalog(t *testing.T) {
	svc, err := NewDBService(nil)
	require.NoError(t, err)
	defer svc.Close()

	trails, err := svc.ListTrails()
	require.NoError(t, err)
	assert.Empty(t, trails)

	stats, err := svc.GetCatalogStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTrails)
	assert.Empty(t, stats.TopRated)
}

func TestDuplicateIDsRejected(t *testing.T) {
	catalog := trail.Catalog()
	catalog[1].ID = catalog[0].ID

	_, err := NewDBService(catalog)
	assert.Error(t, err)
}
