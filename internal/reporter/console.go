package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Console implements Reporter by printing styled step lines
type Console struct {
	out io.Writer
}

// NewConsole creates a Console reporter writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Start(step string) {
	fmt.Fprintln(c.out, pendingStyle.Render("→ "+step))
}

func (c *Console) Success(step string) {
	fmt.Fprintln(c.out, successStyle.Render("✓")+" "+step)
}

func (c *Console) Failure(step string, err error) {
	fmt.Fprintln(c.out, failureStyle.Render("✗")+" "+step)
	if err != nil {
		fmt.Fprintln(c.out, detailStyle.Render("  "+err.Error()))
	}
}
