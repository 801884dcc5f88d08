package migrate

import (
	"context"
	"fmt"
)

const legacyBuildDependency = "react-scripts"

// pathAliasPlugin resolves tsconfig path aliases; only useful on
// TypeScript projects.
const pathAliasPlugin = "vite-tsconfig-paths"

var bundlerPackages = []string{"vite", "@vitejs/plugin-react"}

// swapDependencies removes the legacy build dependency and installs the
// vite toolchain through the package-manager runner. The runner mutates
// package.json and the lockfile itself; nothing is parsed here.
func (m *Migration) swapDependencies(ctx context.Context) error {
	if err := m.npm.Run(ctx, m.project.RootPath, "uninstall", legacyBuildDependency); err != nil {
		return fmt.Errorf("failed to remove %s: %w", legacyBuildDependency, err)
	}

	args := append([]string{"install", "--save-dev"}, bundlerPackages...)
	if m.project.TypeScript {
		args = append(args, pathAliasPlugin)
	}

	if err := m.npm.Run(ctx, m.project.RootPath, args...); err != nil {
		return fmt.Errorf("failed to install vite packages: %w", err)
	}

	return nil
}
