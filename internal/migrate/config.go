package migrate

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	viteConfigName      = "vite.config.js"
	typeDeclarationName = "vite-env.d.ts"
)

// typeDeclarationSource is the fixed content of vite-env.d.ts
const typeDeclarationSource = `/// <reference types="vite/client" />
`

// viteConfigSource is the template for vite.config.js. Plugins are
// rendered in registration order; tailwind adds an extra import and a
// plugin entry into the same configuration object.
const viteConfigSource = `import { defineConfig } from "vite";
import react from "@vitejs/plugin-react";
{{- if .Tailwind }}
import tailwindcss from "tailwindcss";
{{- end }}

export default defineConfig({
    plugins: [{{ join ", " .Plugins }}],
});
`

var viteConfigTemplate = template.Must(
	template.New(viteConfigName).Funcs(sprig.TxtFuncMap()).Parse(viteConfigSource),
)

type viteConfigData struct {
	Tailwind bool
	Plugins  []string
}

// emitConfig writes vite.config.js (overwriting any existing file) and,
// for TypeScript projects, the vite-env.d.ts type-reference declaration.
func (m *Migration) emitConfig(ctx context.Context) error {
	data := viteConfigData{
		Tailwind: m.project.Tailwind,
		Plugins:  []string{"react()"},
	}
	if m.project.Tailwind {
		data.Plugins = append(data.Plugins, "tailwindcss()")
	}

	var buf bytes.Buffer
	if err := viteConfigTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", viteConfigName, err)
	}

	configPath := filepath.Join(m.project.RootPath, viteConfigName)
	if err := m.fs.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	if m.project.TypeScript {
		declPath := filepath.Join(m.project.RootPath, typeDeclarationName)
		if err := m.fs.WriteFile(declPath, []byte(typeDeclarationSource), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", declPath, err)
		}
	}

	return nil
}
