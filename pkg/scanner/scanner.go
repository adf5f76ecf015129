package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filesift/filesift/pkg/files"
)

var (
	// ErrNotFound reports that the scan root does not exist.
	ErrNotFound = errors.New("path does not exist")
	// ErrNotDirectory reports that the scan root is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// WarnFunc receives non-fatal scan problems: entries whose metadata could
// not be read and subtrees that could not be listed.
type WarnFunc func(path string, err error)

type Option func(*Scanner)

// WithExclusions replaces the default exclusion set.
func WithExclusions(set ExclusionSet) Option {
	return func(s *Scanner) {
		s.exclude = set
	}
}

// WithWarnFunc sets the sink for non-fatal scan problems.
func WithWarnFunc(warn WarnFunc) Option {
	return func(s *Scanner) {
		s.warn = warn
	}
}

// Scanner produces a fresh CategoryMap per Categorize call. It only reads
// filesystem metadata and never mutates anything.
type Scanner struct {
	store   files.Store
	exclude ExclusionSet
	warn    WarnFunc
}

func New(store files.Store, options ...Option) *Scanner {
	s := &Scanner{
		store:   store,
		exclude: DefaultExclusions(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Categorize walks dirPath and groups every regular file reachable from it
// by extension key. With fullScan false only the immediate children are
// considered; with fullScan true every non-excluded subdirectory is visited
// depth-first, one subtree at a time.
func (s *Scanner) Categorize(ctx context.Context, dirPath string, fullScan bool) (CategoryMap, error) {
	info, err := s.store.Stat(ctx, dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dirPath)
		}
		return nil, fmt.Errorf("stat %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dirPath)
	}
	result := make(CategoryMap)
	if err := s.scanDir(ctx, dirPath, fullScan, true, result); err != nil {
		return nil, err
	}
	return result, nil
}

// scanDir appends dirPath's files to result. A listing failure is terminal
// at the root and absorbed with a warning below it, so an unreadable
// subtree only loses its own contribution.
func (s *Scanner) scanDir(ctx context.Context, dirPath string, fullScan, isRoot bool, result CategoryMap) error {
	entries, err := s.store.ReadDir(ctx, dirPath)
	if err != nil {
		if isRoot || errors.Is(err, context.Canceled) {
			return fmt.Errorf("read dir %s: %w", dirPath, err)
		}
		s.warnf(dirPath, err)
		return nil
	}

	var subDirs []string
	for _, entry := range entries {
		name := entry.Name()
		fullPath := filepath.Join(dirPath, name)
		// Stat rather than entry.Info so that symlinks resolve to their
		// targets and broken ones surface as metadata failures.
		info, err := s.store.Stat(ctx, fullPath)
		if err != nil {
			s.warnf(fullPath, err)
			continue
		}
		if info.IsDir() {
			if s.exclude.Contains(name) {
				continue
			}
			if fullScan {
				subDirs = append(subDirs, fullPath)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		key := ExtensionKey(name)
		result[key] = append(result[key], FileEntry{
			Name: name,
			Path: fullPath,
			Size: info.Size(),
		})
	}

	// Current-level files are already in; child subtrees merge after them.
	for _, subDir := range subDirs {
		if err := s.scanDir(ctx, subDir, fullScan, false, result); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) warnf(path string, err error) {
	if s.warn != nil {
		s.warn(path, err)
	}
}
