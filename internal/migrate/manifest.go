package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	packageManifestName  = "package.json"
	compilerManifestName = "tsconfig.json"

	// viteClientTypes is appended to compilerOptions.types so TypeScript
	// resolves vite's client-side ambient types.
	viteClientTypes = "vite/client"
)

// viteScripts replaces the scripts block wholesale; pre-existing entries
// are discarded.
const viteScripts = `{"dev": "vite", "build": "vite build", "serve": "vite preview"}`

// indentOptions gives the stable 4-space indentation both manifests are
// serialized with.
var indentOptions = &pretty.Options{Width: 80, Indent: "    "}

// patchPackageScripts replaces the scripts block of package.json with the
// vite commands. Every other key is preserved byte-for-byte, including
// key order, because sjson only rewrites the targeted path.
func (m *Migration) patchPackageScripts(ctx context.Context) error {
	manifestPath := filepath.Join(m.project.RootPath, packageManifestName)

	data, err := m.readManifest(manifestPath)
	if err != nil {
		return err
	}

	patched, err := sjson.SetRawBytes(data, "scripts", []byte(viteScripts))
	if err != nil {
		return fmt.Errorf("failed to patch scripts in %s: %w", manifestPath, err)
	}

	return m.writeManifest(manifestPath, patched)
}

// patchCompilerOptions appends the vite client types entry to
// compilerOptions.types in tsconfig.json. A missing or empty types
// sequence is initialized first rather than treated as an error.
func (m *Migration) patchCompilerOptions(ctx context.Context) error {
	manifestPath := filepath.Join(m.project.RootPath, compilerManifestName)

	data, err := m.readManifest(manifestPath)
	if err != nil {
		return err
	}

	if !gjson.GetBytes(data, "compilerOptions.types").IsArray() {
		data, err = sjson.SetRawBytes(data, "compilerOptions.types", []byte("[]"))
		if err != nil {
			return fmt.Errorf("failed to initialize types in %s: %w", manifestPath, err)
		}
	}

	patched, err := sjson.SetBytes(data, "compilerOptions.types.-1", viteClientTypes)
	if err != nil {
		return fmt.Errorf("failed to append types in %s: %w", manifestPath, err)
	}

	return m.writeManifest(manifestPath, patched)
}

func (m *Migration) readManifest(path string) ([]byte, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s is not valid JSON", path)
	}

	return data, nil
}

func (m *Migration) writeManifest(path string, data []byte) error {
	formatted := pretty.PrettyOptions(data, indentOptions)

	if err := m.fs.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
