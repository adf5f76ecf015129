package scanner

import "slices"

// ExclusionSet holds directory basenames that a recursive scan never
// descends into. Matching is by exact basename.
type ExclusionSet map[string]struct{}

func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the excluded basenames sorted, for display.
func (s ExclusionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultExclusions returns the directory names skipped unless the caller
// provides its own set: version control metadata, dependency caches and
// build output.
func DefaultExclusions() ExclusionSet {
	return NewExclusionSet(
		".git",
		".hg",
		".svn",
		".idea",
		".vscode",
		"node_modules",
		"vendor",
		"target",
		"dist",
		"build",
		"__pycache__",
	)
}
