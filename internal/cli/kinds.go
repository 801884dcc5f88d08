package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitekit/cra2vite/internal/models"
)

// NewKindsCommand creates the kinds command
func NewKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported migration kinds",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range models.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), string(kind))
			}
		},
	}
}
