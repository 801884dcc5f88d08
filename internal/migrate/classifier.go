package migrate

import (
	"path/filepath"

	"github.com/vitekit/cra2vite/internal/filesystem"
)

const (
	// typeScriptMarker indicates a typed-source project when present
	// directly under the root.
	typeScriptMarker = "tsconfig.json"

	// tailwindMarker indicates the project uses tailwind when present
	// directly under the root.
	tailwindMarker = "tailwind.config.js"
)

// Classify inspects the project root and reports whether the project is a
// TypeScript project and whether it uses tailwind. Read-only; both checks
// look at the root directory only, never nested configs.
func Classify(fs filesystem.FileSystem, root string) (typescript, tailwind bool) {
	typescript = fs.Exists(filepath.Join(root, typeScriptMarker))
	tailwind = fs.Exists(filepath.Join(root, tailwindMarker))
	return typescript, tailwind
}
