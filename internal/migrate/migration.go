package migrate

import (
	"fmt"

	"github.com/vitekit/cra2vite/internal/filesystem"
	"github.com/vitekit/cra2vite/internal/models"
	"github.com/vitekit/cra2vite/internal/npm"
)

// Migration bundles the collaborators and the classified project for one
// run. A Migration is single-use: construct, run the stages, discard.
type Migration struct {
	fs      filesystem.FileSystem
	npm     npm.Runner
	project *models.Project
}

// NewMigration creates a Migration for the given project
func NewMigration(fs filesystem.FileSystem, runner npm.Runner, project *models.Project) *Migration {
	return &Migration{
		fs:      fs,
		npm:     runner,
		project: project,
	}
}

// Plan returns the ordered stage list for a migration kind. New kinds
// register their stage lists here without touching the sequencing logic.
func Plan(kind models.MigrationKind, fs filesystem.FileSystem, runner npm.Runner, project *models.Project) ([]Stage, error) {
	switch kind {
	case models.KindReact:
		return NewMigration(fs, runner, project).Stages(), nil
	default:
		return nil, fmt.Errorf("no migration plan for kind %q", kind)
	}
}

// Stages returns the react-to-vite stage list in execution order.
//
// Only the dependency swap is fatal: everything after it is best-effort,
// so a failed HTML rewrite still leaves the manifests patched.
func (m *Migration) Stages() []Stage {
	stages := []Stage{
		{Name: "swap build dependencies", Fatal: true, Run: m.swapDependencies},
		{Name: "restructure entry files", Run: m.restructureEntryFiles},
		{Name: "write vite config", Run: m.emitConfig},
		{Name: "rewrite package.json scripts", Run: m.patchPackageScripts},
	}

	if m.project.TypeScript {
		stages = append(stages, Stage{Name: "register vite types in tsconfig.json", Run: m.patchCompilerOptions})
	}

	return stages
}
