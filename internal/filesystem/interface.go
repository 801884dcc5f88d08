package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
//
// The migration only ever touches files directly under a project root (or
// its public/ and src/ subdirectories), so the surface is deliberately
// small: no walking, no globbing, no directory creation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Remove(path string) error

	Exists(path string) bool
	Getwd() (string, error)
}
