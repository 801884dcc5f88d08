package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitekit/cra2vite/internal/filesystem"
	"github.com/vitekit/cra2vite/internal/npm"
	"github.com/vitekit/cra2vite/internal/reporter"
)

// NewRootCommand creates the root command. Running it without a
// subcommand performs the migration itself.
func NewRootCommand(fs filesystem.FileSystem, runner npm.Runner, rep reporter.Reporter) *cobra.Command {
	cmd := &MigrateCommand{fs: fs, npm: runner, reporter: rep}

	rootCmd := &cobra.Command{
		Use:   "cra2vite [path]",
		Short: "Migrate a create-react-app project to vite",
		Long: `Migrate a create-react-app project to vite in place.

Swaps react-scripts for vite, relocates the HTML entry point, emits a
vite config and patches the package.json and tsconfig.json manifests.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         cmd.Run,
	}

	rootCmd.Flags().StringVar(&cmd.kind, "kind", "", "migration kind to run (case-insensitive); prompted for when omitted")
	rootCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(NewKindsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := npm.NewSpinnerRunner(npm.NewOSRunner())
	rep := reporter.NewConsole(os.Stdout)

	rootCmd := NewRootCommand(fs, runner, rep)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
