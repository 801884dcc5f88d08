package models

import "path/filepath"

// Project represents the web application under migration.
//
// The flags are computed once by the classifier at the start of a run and
// stay immutable afterwards; the project directory on disk is the only
// durable state.
type Project struct {
	// Name is the display name, derived from the final path segment
	Name string

	// RootPath is the absolute path to the project root
	RootPath string

	// TypeScript is true when a tsconfig.json sits directly under the root
	TypeScript bool

	// Tailwind is true when a tailwind.config.js sits directly under the root
	Tailwind bool
}

// NewProject creates a new Project instance
func NewProject(rootPath string, typescript, tailwind bool) *Project {
	return &Project{
		Name:       filepath.Base(rootPath),
		RootPath:   rootPath,
		TypeScript: typescript,
		Tailwind:   tailwind,
	}
}
