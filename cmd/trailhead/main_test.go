package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/trailhead/internal/database"
	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

// execute runs the CLI with args against an empty config directory and
// returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestListAll(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, tr := range trail.Catalog() {
		assert.Contains(t, out, tr.Title)
	}
	assert.Contains(t, out, "Total: 6 trail(s)")
}

func TestListByCategory(t *testing.T) {
	out, err := execute(t, "list", "--category", "hiking")
	require.NoError(t, err)

	assert.Contains(t, out, "Mystic Forest Trail")
	assert.Contains(t, out, "Redwood Giants Trail")
	assert.NotContains(t, out, "Crystal Caverns")
	assert.Contains(t, out, "Total: 3 trail(s)")
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--category", "caves", "--json")
	require.NoError(t, err)

	var trails []trail.Trail
	require.NoError(t, json.Unmarshal([]byte(out), &trails))
	require.Len(t, trails, 1)
	assert.Equal(t, "Crystal Caverns", trails[0].Title)
}

func TestListFilters(t *testing.T) {
	out, err := execute(t, "list", "--difficulty", "easy", "--min-rating", "4.7", "--json")
	require.NoError(t, err)

	var trails []trail.Trail
	require.NoError(t, json.Unmarshal([]byte(out), &trails))
	for _, tr := range trails {
		assert.Equal(t, trail.Easy, tr.Difficulty)
		assert.GreaterOrEqual(t, tr.Rating, 4.7)
	}
}

func TestListNoMatches(t *testing.T) {
	out, err := execute(t, "list", "--min-rating", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No trails found.")
}

func TestListRejectsUnknownCategory(t *testing.T) {
	_, err := execute(t, "list", "--category", "beaches")
	assert.ErrorIs(t, err, trail.ErrUnknownCategory)

	_, err = execute(t, "list", "--difficulty", "extreme")
	assert.ErrorIs(t, err, trail.ErrUnknownDifficulty)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Mountain Peak Ascent")
	assert.Contains(t, out, "Dragon's Tooth")
	assert.Contains(t, out, "★★★★★")

	_, err = execute(t, "show", "99")
	assert.ErrorIs(t, err, database.ErrTrailNotFound)

	_, err = execute(t, "show")
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "categories", "--json")
	require.NoError(t, err)

	var counts []database.CategoryCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	require.Len(t, counts, len(trail.Categories()))
	assert.Equal(t, database.CategoryCount{Category: trail.All, Count: 6}, counts[0])
	assert.Equal(t, database.CategoryCount{Category: trail.Hiking, Count: 3}, counts[1])
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "4.65")
	assert.Contains(t, out, "Mountain Peak Ascent, Redwood Giants Trail")

	out, err = execute(t, "stats", "--json")
	require.NoError(t, err)
	var stats database.CatalogStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 6, stats.TotalTrails)
	assert.Equal(t, 3, stats.ByDifficulty[trail.Easy])
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Trailhead v"+Version)
}
