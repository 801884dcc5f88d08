package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/vitekit/cra2vite/internal/filesystem"
	"github.com/vitekit/cra2vite/internal/migrate"
	"github.com/vitekit/cra2vite/internal/models"
	"github.com/vitekit/cra2vite/internal/npm"
	"github.com/vitekit/cra2vite/internal/reporter"
	"github.com/vitekit/cra2vite/internal/tui"
	"github.com/vitekit/cra2vite/internal/validate"
)

// MigrateCommand handles the migration run
type MigrateCommand struct {
	fs       filesystem.FileSystem
	npm      npm.Runner
	reporter reporter.Reporter

	kind string
	yes  bool
}

// Run executes the migration command
func (c *MigrateCommand) Run(cmd *cobra.Command, args []string) error {
	root, err := c.resolveRoot(args)
	if err != nil {
		return err
	}

	kind, err := c.resolveKind()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if err := validate.ReactProject(c.fs, root); err != nil {
		return err
	}

	typescript, tailwind := migrate.Classify(c.fs, root)
	project := models.NewProject(root, typescript, tailwind)

	if !c.yes {
		confirmed, err := tui.ConfirmMigration(root)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			return nil
		}
	}

	stages, err := migrate.Plan(kind, c.fs, c.npm, project)
	if err != nil {
		return err
	}

	result := migrate.RunStages(cmd.Context(), stages, c.reporter)

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(project, result))

	if result.Aborted {
		failed := result.Failed()
		return fmt.Errorf("migration aborted: %s failed", failed[len(failed)-1].Name)
	}

	return nil
}

// resolveRoot turns the optional path argument into an absolute project
// root, defaulting to the working directory.
func (c *MigrateCommand) resolveRoot(args []string) (string, error) {
	if len(args) > 0 {
		path := args[0]
		if filepath.IsAbs(path) {
			return filepath.Clean(path), nil
		}

		wd, err := c.fs.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		return filepath.Join(wd, path), nil
	}

	wd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// resolveKind parses the --kind flag or prompts when it was omitted
func (c *MigrateCommand) resolveKind() (models.MigrationKind, error) {
	if strings.TrimSpace(c.kind) != "" {
		return models.ParseMigrationKind(c.kind)
	}

	return tui.SelectKind(models.Kinds())
}
