package validate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/vitekit/cra2vite/internal/filesystem"
)

// ErrNotReactProject signals that the target path does not look like a
// create-react-app project. A second run against an already-migrated tree
// fails here instead of corrupting state further.
var ErrNotReactProject = errors.New("not a create-react-app project")

// ReactProject checks that the directory at root looks like a
// create-react-app project before any migration work starts.
func ReactProject(fs filesystem.FileSystem, root string) error {
	manifestPath := filepath.Join(root, "package.json")
	if !fs.Exists(manifestPath) {
		return fmt.Errorf("%w: no package.json at %s", ErrNotReactProject, root)
	}

	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read package.json: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: package.json is not valid JSON", ErrNotReactProject)
	}

	if !gjson.GetBytes(data, "dependencies.react-scripts").Exists() &&
		!gjson.GetBytes(data, "devDependencies.react-scripts").Exists() {
		return fmt.Errorf("%w: react-scripts is not a dependency", ErrNotReactProject)
	}

	if !fs.Exists(filepath.Join(root, "public", "index.html")) {
		return fmt.Errorf("%w: public/index.html not found", ErrNotReactProject)
	}

	return nil
}
