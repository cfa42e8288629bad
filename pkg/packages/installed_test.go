package packages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

func writeInstalled(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "vendor", "composer")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "installed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_PackagesLayout(t *testing.T) {
	path := writeInstalled(t, `{
    "packages": [
        {"name": "acme/widget", "version": "1.2.0", "type": "component", "install-path": "../acme/widget"},
        {"name": "acme/lib", "version": "2.0.0"}
    ],
    "dev": true
}`)
	vendor := filepath.Dir(filepath.Dir(path))

	pkgs, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []types.Package{
		{Name: "acme/widget", Type: "component", Version: "1.2.0", Path: filepath.Join(vendor, "acme", "widget")},
		{Name: "acme/lib", Type: types.DefaultPackageType, Version: "2.0.0"},
	}, pkgs)
}

func TestLoad_ArrayLayout(t *testing.T) {
	path := writeInstalled(t, `[
    {"name": "zeta/pkg", "version": "1.0.0", "type": "library"},
    {"name": "alpha/pkg", "version": "1.0.0", "type": "metapackage"}
]`)

	pkgs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, "zeta/pkg", pkgs[0].Name, "file order is kept")
	assert.Equal(t, "metapackage", pkgs[1].Type)
}

func TestLoad_EmptyAndMissing(t *testing.T) {
	pkgs, err := Load(filepath.Join(t.TempDir(), "installed.json"))
	require.NoError(t, err)
	assert.Empty(t, pkgs)

	pkgs, err = Load(writeInstalled(t, "  \n"))
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestLoad_SkipsNamelessRecords(t *testing.T) {
	pkgs, err := Load(writeInstalled(t, `[{"version": "1.0"}, {"name": "acme/x"}]`))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "acme/x", pkgs[0].Name)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeInstalled(t, `{"packages": [`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstalledRead))
}
