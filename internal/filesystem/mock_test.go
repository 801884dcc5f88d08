package filesystem_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/vitekit/cra2vite/internal/filesystem"
)

func TestMockFileSystem_ReadWriteRemove(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/app/package.json", []byte("{}"))

	content, err := mfs.ReadFile("/app/package.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "{}" {
		t.Errorf("unexpected content: %s", content)
	}

	if err := mfs.WriteFile("/app/index.html", []byte("<html>"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !mfs.Exists("/app/index.html") {
		t.Error("written file should exist")
	}

	if err := mfs.Remove("/app/index.html"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if mfs.Exists("/app/index.html") {
		t.Error("removed file should not exist")
	}
}

func TestMockFileSystem_MissingFileErrors(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()

	if _, err := mfs.ReadFile("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if err := mfs.Remove("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMockFileSystem_WriteIntoUnknownDirectoryFails(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir("/app")

	if err := mfs.WriteFile("/app/sub/file.txt", []byte("x"), 0644); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist for unknown parent dir, got %v", err)
	}
}

func TestMockFileSystem_AddFileCreatesParents(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/app/public/index.html", []byte("<html>"))

	if !mfs.Exists("/app/public") {
		t.Error("parent directory should exist")
	}
	if !mfs.Exists("/app") {
		t.Error("grandparent directory should exist")
	}
}

func TestMockFileSystem_InjectedErrors(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/app/index.html", []byte("<html>"))

	boom := errors.New("disk full")
	mfs.WriteErrors["/app/vite.config.js"] = boom
	mfs.RemoveErrors["/app/index.html"] = boom

	if err := mfs.WriteFile("/app/vite.config.js", []byte("x"), 0644); !errors.Is(err, boom) {
		t.Errorf("expected injected write error, got %v", err)
	}
	if err := mfs.Remove("/app/index.html"); !errors.Is(err, boom) {
		t.Errorf("expected injected remove error, got %v", err)
	}
}
