package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitekit/cra2vite/internal/filesystem"
	"github.com/vitekit/cra2vite/internal/validate"
)

func TestReactProject(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fs *filesystem.MockFileSystem)
		wantErr bool
	}{
		{
			name: "valid project with react-scripts dependency",
			setup: func(fs *filesystem.MockFileSystem) {
				fs.AddFile("/app/package.json", []byte(`{"dependencies": {"react-scripts": "5.0.1"}}`))
				fs.AddFile("/app/public/index.html", []byte("<html></html>"))
			},
		},
		{
			name: "valid project with react-scripts dev dependency",
			setup: func(fs *filesystem.MockFileSystem) {
				fs.AddFile("/app/package.json", []byte(`{"devDependencies": {"react-scripts": "5.0.1"}}`))
				fs.AddFile("/app/public/index.html", []byte("<html></html>"))
			},
		},
		{
			name:    "missing package.json",
			setup:   func(fs *filesystem.MockFileSystem) { fs.AddDir("/app") },
			wantErr: true,
		},
		{
			name: "invalid package.json",
			setup: func(fs *filesystem.MockFileSystem) {
				fs.AddFile("/app/package.json", []byte("{not json"))
				fs.AddFile("/app/public/index.html", []byte("<html></html>"))
			},
			wantErr: true,
		},
		{
			name: "react-scripts not a dependency",
			setup: func(fs *filesystem.MockFileSystem) {
				fs.AddFile("/app/package.json", []byte(`{"dependencies": {"react": "^18.2.0"}}`))
				fs.AddFile("/app/public/index.html", []byte("<html></html>"))
			},
			wantErr: true,
		},
		{
			name: "missing public/index.html",
			setup: func(fs *filesystem.MockFileSystem) {
				fs.AddFile("/app/package.json", []byte(`{"dependencies": {"react-scripts": "5.0.1"}}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			tt.setup(fs)

			err := validate.ReactProject(fs, "/app")

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReactProject_ErrorIsSentinel(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/app")

	err := validate.ReactProject(fs, "/app")

	require.ErrorIs(t, err, validate.ErrNotReactProject)
}
