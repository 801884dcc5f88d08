package tui

import (
	"fmt"
	"strings"

	"github.com/vitekit/cra2vite/internal/migrate"
	"github.com/vitekit/cra2vite/internal/models"
)

// RenderSummary renders the end-of-run summary shown after the pipeline
func RenderSummary(project *models.Project, result *migrate.Result) string {
	var b strings.Builder

	if result.OK() {
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("%s is now a vite project.", project.Name)))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Start the dev server with: npm run dev"))
		return b.String()
	}

	if result.Aborted {
		b.WriteString(ErrorStyle.Render("Migration aborted."))
	} else {
		b.WriteString(ErrorStyle.Render("Migration finished with failures."))
	}
	b.WriteString("\n")

	for _, step := range result.Failed() {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s: %v", step.Name, step.Err)))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("Failed steps must be resolved manually; the run is not rolled back."))

	return b.String()
}
