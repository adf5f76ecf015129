package scanner

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStats(t *testing.T) {
	m := CategoryMap{
		".txt": {
			{Name: "a.txt", Path: "/r/a.txt", Size: 10},
			{Name: "b.txt", Path: "/r/b.txt", Size: 5},
		},
		NoExtension: {
			{Name: "README", Path: "/r/README", Size: 100},
		},
		".go": {
			{Name: "main.go", Path: "/r/main.go", Size: 7},
		},
	}

	stats := Stats(m)
	assert.Equal(t, 3, len(stats))

	// Sorted by extension, no-extension bucket last.
	assert.Equal(t, ".go", stats[0].Extension)
	assert.Equal(t, ".txt", stats[1].Extension)
	assert.Equal(t, NoExtension, stats[2].Extension)

	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, int64(15), stats[1].TotalSize)
	assert.Equal(t, int64(100), stats[2].TotalSize)
}

func TestStats_Empty(t *testing.T) {
	assert.Equal(t, 0, len(Stats(CategoryMap{})))
}

func TestTotals(t *testing.T) {
	m := CategoryMap{
		".txt":      {{Size: 10}, {Size: 5}},
		NoExtension: {{Size: 1}},
	}
	count, size := Totals(m)
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(16), size)
}

func TestSortedByName(t *testing.T) {
	entries := []FileEntry{
		{Name: "zeta.txt"},
		{Name: "alpha.txt"},
		{Name: "mid.txt"},
	}
	sorted := SortedByName(entries)
	assert.Equal(t, "alpha.txt", sorted[0].Name)
	assert.Equal(t, "mid.txt", sorted[1].Name)
	assert.Equal(t, "zeta.txt", sorted[2].Name)
	// The input is not mutated.
	assert.Equal(t, "zeta.txt", entries[0].Name)
}

func TestExclusionSet(t *testing.T) {
	set := NewExclusionSet("node_modules", "", ".git")
	assert.True(t, set.Contains(".git"))
	assert.True(t, set.Contains("node_modules"))
	assert.False(t, set.Contains("src"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{".git", "node_modules"}, set.Names())

	defaults := DefaultExclusions()
	assert.True(t, defaults.Contains(".git"))
	assert.True(t, defaults.Contains("vendor"))
	assert.False(t, defaults.Contains("cmd"))
}
