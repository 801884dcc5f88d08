package models

import (
	"fmt"
	"strings"
)

// MigrationKind identifies which build-tooling migration to run.
type MigrationKind string

const (
	// KindReact migrates a create-react-app project to vite
	KindReact MigrationKind = "react"
)

// Kinds returns all supported migration kinds.
func Kinds() []MigrationKind {
	return []MigrationKind{KindReact}
}

// ParseMigrationKind parses a case-insensitive kind selector string.
func ParseMigrationKind(s string) (MigrationKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, kind := range Kinds() {
		if normalized == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown migration kind %q (supported: %s)", s, joinKinds(Kinds()))
}

func joinKinds(kinds []MigrationKind) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}
