package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// MockFileSystem provides an in-memory filesystem for testing.
//
// Directories are tracked separately from files so that Exists reports
// them and writes into unknown directories fail like the real thing.
type MockFileSystem struct {
	files      map[string][]byte
	dirs       map[string]struct{}
	currentDir string

	// WriteErrors and RemoveErrors let tests inject failures per path.
	WriteErrors  map[string]error
	RemoveErrors map[string]error
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:        make(map[string][]byte),
		dirs:         make(map[string]struct{}),
		currentDir:   "/workspace",
		WriteErrors:  make(map[string]error),
		RemoveErrors: make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem, creating parent directories
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = content
	mfs.AddDir(filepath.Dir(cleanPath))
}

// AddDir adds a directory (and its parents) to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	dir := filepath.Clean(path)
	for dir != "." && dir != string(filepath.Separator) {
		mfs.dirs[dir] = struct{}{}
		dir = filepath.Dir(dir)
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	content, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	if err := mfs.WriteErrors[cleanPath]; err != nil {
		return err
	}

	dir := filepath.Dir(cleanPath)
	if _, exists := mfs.dirs[dir]; !exists && dir != "." && dir != string(filepath.Separator) {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	mfs.files[cleanPath] = data
	return nil
}

func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := filepath.Clean(path)

	if err := mfs.RemoveErrors[cleanPath]; err != nil {
		return err
	}

	if _, exists := mfs.files[cleanPath]; !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; exists {
		return true
	}
	_, exists := mfs.dirs[cleanPath]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// Paths returns all file paths in the mock filesystem, sorted
func (mfs *MockFileSystem) Paths() []string {
	paths := make([]string, 0, len(mfs.files))
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
