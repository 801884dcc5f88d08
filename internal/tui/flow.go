package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/vitekit/cra2vite/internal/models"
)

// SelectKind prompts for a migration kind when none was passed on the
// command line. Returns huh.ErrUserAborted when the user bails out.
func SelectKind(kinds []models.MigrationKind) (models.MigrationKind, error) {
	selected := ""

	opts := make([]huh.Option[string], 0, len(kinds))
	for _, kind := range kinds {
		opts = append(opts, huh.NewOption(string(kind), string(kind)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Migration").
			Description("Select the migration to run."),
	).
		WithTheme(NewHuhTheme()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return models.MigrationKind(""), err
	}

	return models.ParseMigrationKind(selected)
}

// ConfirmMigration asks before rewriting files under root. Returns
// huh.ErrUserAborted when the user bails out of the form entirely.
func ConfirmMigration(root string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Migrate %s to vite?", root)).
				Description("This rewrites files in place. There is no undo.").
				Affirmative("Migrate").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithTheme(NewHuhTheme()).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
