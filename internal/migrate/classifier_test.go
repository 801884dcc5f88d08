package migrate_test

import (
	"testing"

	"github.com/vitekit/cra2vite/internal/filesystem"
	"github.com/vitekit/cra2vite/internal/migrate"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		files          []string
		wantTypeScript bool
		wantTailwind   bool
	}{
		{"plain javascript project", []string{"/app/package.json"}, false, false},
		{"typescript project", []string{"/app/package.json", "/app/tsconfig.json"}, true, false},
		{"tailwind project", []string{"/app/package.json", "/app/tailwind.config.js"}, false, true},
		{"typescript with tailwind", []string{"/app/tsconfig.json", "/app/tailwind.config.js"}, true, true},
		{"nested markers are ignored", []string{"/app/packages/ui/tsconfig.json", "/app/src/tailwind.config.js"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			fs.AddDir("/app")
			for _, path := range tt.files {
				fs.AddFile(path, []byte("{}"))
			}

			typescript, tailwind := migrate.Classify(fs, "/app")

			if typescript != tt.wantTypeScript {
				t.Errorf("typescript = %v, want %v", typescript, tt.wantTypeScript)
			}
			if tailwind != tt.wantTailwind {
				t.Errorf("tailwind = %v, want %v", tailwind, tt.wantTailwind)
			}
		})
	}
}
