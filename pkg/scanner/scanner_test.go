package scanner

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/filesift/filesift/pkg/files"
	"github.com/filesift/filesift/pkg/files/osfile"
)

func TestExtensionKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"a.txt", ".txt"},
		{"b.TXT", ".txt"},
		{"archive.tar.gz", ".gz"},
		{"c", NoExtension},
		{".gitignore", NoExtension},
		{"trailing.", "."},
		{"UPPER.Go", ".go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtensionKey(tt.name))
		})
	}
}

func writeFiles(t *testing.T, dir string, names map[string]string) {
	t.Helper()
	for name, content := range names {
		fullPath := filepath.Join(dir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		assert.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func newTestScanner(root string, options ...Option) *Scanner {
	return New(osfile.NewStore(root), options...)
}

func TestCategorize_GroupsByLowerCasedExtension(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.txt": "aa",
		"b.TXT": "bbb",
		"c":     "c",
	})

	result, err := newTestScanner(tmpDir).Categorize(context.Background(), tmpDir, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(result))

	txt := result[".txt"]
	assert.Equal(t, 2, len(txt))
	names := []string{txt[0].Name, txt[1].Name}
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt", "b.TXT"}, names)
	for _, entry := range txt {
		assert.Equal(t, filepath.Join(tmpDir, entry.Name), entry.Path)
	}

	noExt := result[NoExtension]
	assert.Equal(t, 1, len(noExt))
	assert.Equal(t, "c", noExt[0].Name)
	assert.Equal(t, int64(1), noExt[0].Size)
}

func TestCategorize_RecursionFlag(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"top.txt":                    "top",
		filepath.Join("sub", "d.txt"): "ddd",
	})

	t.Run("shallow_excludes_subdir_files", func(t *testing.T) {
		result, err := newTestScanner(tmpDir).Categorize(context.Background(), tmpDir, false)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result[".txt"]))
		assert.Equal(t, "top.txt", result[".txt"][0].Name)
	})

	t.Run("full_scan_includes_subdir_files", func(t *testing.T) {
		result, err := newTestScanner(tmpDir).Categorize(context.Background(), tmpDir, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result[".txt"]))
		// Current-level entries come first, subtree entries after.
		assert.Equal(t, "top.txt", result[".txt"][0].Name)
		assert.Equal(t, "d.txt", result[".txt"][1].Name)
	})
}

func TestCategorize_ExcludedDirIsNeverDescended(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		filepath.Join(".git", "config"):        "vcs",
		filepath.Join(".git", "deep", "x.txt"): "x",
		filepath.Join("kept", "y.txt"):         "y",
	})

	result, err := newTestScanner(tmpDir).Categorize(context.Background(), tmpDir, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result[".txt"]))
	assert.Equal(t, "y.txt", result[".txt"][0].Name)
	assert.Equal(t, 0, len(result[NoExtension]))
}

func TestCategorize_CustomExclusions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		filepath.Join("skipme", "a.log"): "a",
		filepath.Join(".git", "b.log"):   "b",
	})

	s := newTestScanner(tmpDir, WithExclusions(NewExclusionSet("skipme")))
	result, err := s.Categorize(context.Background(), tmpDir, true)
	assert.NoError(t, err)
	// Only "skipme" is pruned; the injected set replaces the defaults.
	assert.Equal(t, 1, len(result[".log"]))
	assert.Equal(t, "b.log", result[".log"][0].Name)
}

func TestCategorize_MissingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	store := &countingStore{Store: osfile.NewStore(tmpDir)}
	s := New(store)

	result, err := s.Categorize(context.Background(), filepath.Join(tmpDir, "absent"), true)
	assert.IsError(t, err, ErrNotFound)
	assert.True(t, result == nil)
	// Root validation fires before any listing attempt.
	assert.Equal(t, 0, store.readDirCalls)
}

func TestCategorize_RootIsRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "plain.txt")
	assert.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	store := &countingStore{Store: osfile.NewStore(tmpDir)}
	result, err := New(store).Categorize(context.Background(), filePath, true)
	assert.IsError(t, err, ErrNotDirectory)
	assert.True(t, result == nil)
	assert.Equal(t, 0, store.readDirCalls)
}

func TestCategorize_SingleUnreadableEntryIsSkipped(t *testing.T) {
	root := "/scan"
	store := newFakeStore()
	store.addDir(root,
		files.NewDirEntry("good.txt", false, files.Size(3)),
		files.NewDirEntry("broken.txt", false),
		files.NewDirEntry("also-good.md", false, files.Size(7)),
	)
	store.statErr[filepath.Join(root, "broken.txt")] = errors.New("permission denied")

	var warned []string
	s := New(store, WithWarnFunc(func(path string, _ error) {
		warned = append(warned, path)
	}))

	result, err := s.Categorize(context.Background(), root, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result[".txt"]))
	assert.Equal(t, "good.txt", result[".txt"][0].Name)
	assert.Equal(t, 1, len(result[".md"]))
	assert.Equal(t, []string{filepath.Join(root, "broken.txt")}, warned)
}

func TestCategorize_UnreadableSubtreeIsAbsorbed(t *testing.T) {
	root := "/scan"
	store := newFakeStore()
	store.addDir(root,
		files.NewDirEntry("a.txt", false, files.Size(1)),
		files.NewDirEntry("locked", true),
		files.NewDirEntry("open", true),
	)
	store.addDir(filepath.Join(root, "open"),
		files.NewDirEntry("b.txt", false, files.Size(2)),
	)
	store.readDirErr[filepath.Join(root, "locked")] = errors.New("permission denied")

	var warned []string
	s := New(store, WithWarnFunc(func(path string, _ error) {
		warned = append(warned, path)
	}))

	result, err := s.Categorize(context.Background(), root, true)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(result[".txt"]))
	assert.Equal(t, "a.txt", result[".txt"][0].Name)
	assert.Equal(t, "b.txt", result[".txt"][1].Name)
	assert.Equal(t, []string{filepath.Join(root, "locked")}, warned)
}

func TestCategorize_RootListingFailureIsTerminal(t *testing.T) {
	root := "/scan"
	store := newFakeStore()
	store.addDir(root)
	store.readDirErr[root] = errors.New("permission denied")

	result, err := New(store).Categorize(context.Background(), root, true)
	assert.Error(t, err)
	assert.True(t, result == nil)
}

func TestCategorize_MergeOrderIsDeterministic(t *testing.T) {
	// Current-level files first, then each child subtree in traversal order.
	root := "/scan"
	store := newFakeStore()
	store.addDir(root,
		files.NewDirEntry("alpha", true),
		files.NewDirEntry("beta", true),
		files.NewDirEntry("root.txt", false, files.Size(1)),
	)
	store.addDir(filepath.Join(root, "alpha"),
		files.NewDirEntry("a.txt", false, files.Size(1)),
	)
	store.addDir(filepath.Join(root, "beta"),
		files.NewDirEntry("b.txt", false, files.Size(1)),
	)

	result, err := New(store).Categorize(context.Background(), root, true)
	assert.NoError(t, err)
	got := make([]string, 0, 3)
	for _, entry := range result[".txt"] {
		got = append(got, entry.Name)
	}
	assert.Equal(t, []string{"root.txt", "a.txt", "b.txt"}, got)
}

func TestCategorize_SymlinksAreNotRegularFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"real.txt": "real"})

	if err := os.Symlink(filepath.Join(tmpDir, "real.txt"), filepath.Join(tmpDir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	// A broken symlink surfaces as a metadata failure and is skipped.
	assert.NoError(t, os.Symlink(filepath.Join(tmpDir, "gone"), filepath.Join(tmpDir, "dangling.txt")))

	var warned []string
	s := newTestScanner(tmpDir, WithWarnFunc(func(path string, _ error) {
		warned = append(warned, path)
	}))
	result, err := s.Categorize(context.Background(), tmpDir, false)
	assert.NoError(t, err)
	// The resolving symlink counts through stat; the dangling one is warned about.
	assert.Equal(t, 2, len(result[".txt"]))
	assert.Equal(t, []string{filepath.Join(tmpDir, "dangling.txt")}, warned)
}

// --- fakes ---

type countingStore struct {
	files.Store
	readDirCalls int
}

func (s *countingStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	s.readDirCalls++
	return s.Store.ReadDir(ctx, name)
}

type fakeStore struct {
	dirs       map[string][]os.DirEntry
	statErr    map[string]error
	readDirErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		dirs:       make(map[string][]os.DirEntry),
		statErr:    make(map[string]error),
		readDirErr: make(map[string]error),
	}
}

func (s *fakeStore) addDir(path string, entries ...os.DirEntry) {
	s.dirs[path] = entries
}

func (s *fakeStore) RootTitle() string { return "fake" }

func (s *fakeStore) RootURL() url.URL { return url.URL{Scheme: "fake"} }

func (s *fakeStore) ReadDir(_ context.Context, name string) ([]os.DirEntry, error) {
	if err := s.readDirErr[name]; err != nil {
		return nil, err
	}
	entries, ok := s.dirs[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return entries, nil
}

func (s *fakeStore) Stat(_ context.Context, name string) (os.FileInfo, error) {
	if err := s.statErr[name]; err != nil {
		return nil, err
	}
	if _, ok := s.dirs[name]; ok {
		return files.NewDirEntry(filepath.Base(name), true).Info()
	}
	parent, base := filepath.Split(name)
	for _, entry := range s.dirs[filepath.Clean(parent)] {
		if entry.Name() == base {
			return entry.Info()
		}
	}
	return nil, fs.ErrNotExist
}

func (s *fakeStore) ReadFile(_ context.Context, _ string, _ int) ([]byte, error) {
	return nil, fs.ErrNotExist
}

func (s *fakeStore) Delete(_ context.Context, _ string) error {
	return fs.ErrNotExist
}
