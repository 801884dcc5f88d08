package migrate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// publicURLToken is the CRA placeholder stripped from the HTML entry.
	// Exact literal match; this is textual substitution, not templating.
	publicURLToken = "%PUBLIC_URL%"

	// mountRootMarkup is the element the app renders into. The splice in
	// injectModuleScript depends on this exact byte sequence.
	mountRootMarkup = `<div id="root"></div>`

	legacyHTMLPath = "public/index.html"
	rootHTMLName   = "index.html"
)

// entryScripts are the canonical CRA entry files renamed to .jsx on
// JavaScript projects.
var entryScripts = []string{"index.js", "App.js"}

// restructureEntryFiles renames the source entries to the vite extension
// convention and relocates the HTML entry point to the project root.
func (m *Migration) restructureEntryFiles(ctx context.Context) error {
	if !m.project.TypeScript {
		if err := m.renameEntryScripts(); err != nil {
			return err
		}
	}

	return m.relocateIndexHTML()
}

// renameEntryScripts copies each canonical .js entry to a .jsx sibling and
// deletes the original. Missing entries are skipped, not an error.
func (m *Migration) renameEntryScripts() error {
	for _, name := range entryScripts {
		src := filepath.Join(m.project.RootPath, "src", name)
		if !m.fs.Exists(src) {
			continue
		}

		content, err := m.fs.ReadFile(src)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}

		dst := strings.TrimSuffix(src, ".js") + ".jsx"
		if err := m.fs.WriteFile(dst, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}

		if err := m.fs.Remove(src); err != nil {
			return fmt.Errorf("failed to remove %s: %w", src, err)
		}
	}

	return nil
}

// relocateIndexHTML rewrites public/index.html as a root-level index.html
// with the module script tag vite expects, then deletes the original.
func (m *Migration) relocateIndexHTML() error {
	legacyPath := filepath.Join(m.project.RootPath, filepath.FromSlash(legacyHTMLPath))

	content, err := m.fs.ReadFile(legacyPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", legacyPath, err)
	}

	document := strings.ReplaceAll(string(content), publicURLToken, "")

	rewritten, err := injectModuleScript(document, m.entryScriptSrc())
	if err != nil {
		return err
	}

	rootPath := filepath.Join(m.project.RootPath, rootHTMLName)
	if err := m.fs.WriteFile(rootPath, []byte(rewritten), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rootPath, err)
	}

	if err := m.fs.Remove(legacyPath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", legacyPath, err)
	}

	return nil
}

// entryScriptSrc returns the script src matching the typed-source flag
func (m *Migration) entryScriptSrc() string {
	if m.project.TypeScript {
		return "/src/index.tsx"
	}
	return "/src/index.jsx"
}

// injectModuleScript splices a module script tag directly after the mount
// root element. The literal split-and-reassemble is fragile against
// whitespace or casing differences in the marker, but it is the contract:
// keep it isolated here if a document-tree edit ever replaces it.
func injectModuleScript(document, scriptSrc string) (string, error) {
	parts := strings.SplitN(document, mountRootMarkup, 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("mount root element %s not found in HTML entry", mountRootMarkup)
	}

	scriptTag := fmt.Sprintf(`<script type="module" src="%s"></script>`, scriptSrc)

	return parts[0] + mountRootMarkup + "\n    " + scriptTag + parts[1], nil
}
