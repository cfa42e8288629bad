package testutil

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Project is a composer-style project laid out under a temporary root
type Project struct {
	t    testing.TB
	Root string
}

// SetupProject creates an empty project root and points every XDG
// directory at a temporary location so user config and logs stay isolated
func SetupProject(t testing.TB) *Project {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	return &Project{t: t, Root: t.TempDir()}
}

// Path joins a slash-separated path onto the project root
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// AddPackage creates vendor/<name>
func (p *Project) AddPackage(name string) *Project {
	p.t.Helper()
	require.NoError(p.t, os.MkdirAll(p.Path("vendor/"+name), 0755))
	return p
}

// WriteFile writes content to a path relative to the root
func (p *Project) WriteFile(rel, content string) *Project {
	p.t.Helper()
	full := p.Path(rel)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(p.t, os.WriteFile(full, []byte(content), 0644))
	return p
}

// WriteManifest writes composer.json
func (p *Project) WriteManifest(content string) *Project {
	return p.WriteFile("composer.json", content)
}

// WriteInstalled writes vendor/composer/installed.json
func (p *Project) WriteInstalled(content string) *Project {
	return p.WriteFile("vendor/composer/installed.json", content)
}

// InstalledJSON renders packages in the {"packages": [...]} layout with
// install paths relative to vendor/composer
func InstalledJSON(pkgs ...types.Package) string {
	type record struct {
		Name        string `json:"name"`
		Version     string `json:"version,omitempty"`
		Type        string `json:"type,omitempty"`
		InstallPath string `json:"install-path"`
	}
	doc := struct {
		Packages []record `json:"packages"`
	}{Packages: []record{}}
	for _, pkg := range pkgs {
		doc.Packages = append(doc.Packages, record{
			Name:        pkg.Name,
			Version:     pkg.Version,
			Type:        pkg.Type,
			InstallPath: path.Join("..", pkg.Name),
		})
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		panic(err)
	}
	return string(data)
}
