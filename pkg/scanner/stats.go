package scanner

import (
	"slices"
	"strings"
)

// CategoryStat summarizes one extension category for display.
type CategoryStat struct {
	Extension string
	Count     int
	TotalSize int64
}

// Stats flattens m into per-extension summaries sorted by extension key,
// with the no-extension bucket last.
func Stats(m CategoryMap) []CategoryStat {
	stats := make([]CategoryStat, 0, len(m))
	for ext, entries := range m {
		stat := CategoryStat{Extension: ext, Count: len(entries)}
		for _, entry := range entries {
			stat.TotalSize += entry.Size
		}
		stats = append(stats, stat)
	}
	slices.SortFunc(stats, func(a, b CategoryStat) int {
		if a.Extension == NoExtension {
			return 1
		}
		if b.Extension == NoExtension {
			return -1
		}
		return strings.Compare(a.Extension, b.Extension)
	})
	return stats
}

// Totals sums file count and byte size across all categories.
func Totals(m CategoryMap) (count int, size int64) {
	for _, entries := range m {
		count += len(entries)
		for _, entry := range entries {
			size += entry.Size
		}
	}
	return count, size
}

// SortedByName returns the category's entries ordered by name. The
// categorizer itself keeps insertion order; ordering for display is the
// presentation layer's concern.
func SortedByName(entries []FileEntry) []FileEntry {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b FileEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
