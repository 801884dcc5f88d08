package models_test

import (
	"testing"

	"github.com/vitekit/cra2vite/internal/models"
)

func TestParseMigrationKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.MigrationKind
		wantErr bool
	}{
		{"lowercase", "react", models.KindReact, false},
		{"uppercase", "REACT", models.KindReact, false},
		{"mixed case", "React", models.KindReact, false},
		{"surrounding whitespace", "  react \n", models.KindReact, false},
		{"unknown kind", "vue", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseMigrationKind(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMigrationKind(%q) expected error, got %q", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseMigrationKind(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMigrationKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewProject_DerivesNameFromPath(t *testing.T) {
	project := models.NewProject("/workspace/apps/storefront", true, false)

	if project.Name != "storefront" {
		t.Errorf("expected name storefront, got %s", project.Name)
	}
	if !project.TypeScript {
		t.Error("expected TypeScript flag to be set")
	}
	if project.Tailwind {
		t.Error("expected Tailwind flag to be unset")
	}
}
