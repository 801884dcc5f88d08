package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the purple/green huh theme used by all prompts
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color("#7D56F4")
	muted := lipgloss.Color("#888888")

	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent)
	t.Blurred.Title = t.Blurred.Title.Foreground(muted)

	return t
}
