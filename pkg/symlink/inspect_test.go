package symlink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vendorlink/pkg/filesystem"
	"github.com/arthur-debert/vendorlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	fsys := filesystem.NewOS()
	pkg := types.Package{Name: "acme/widget", Type: "component"}

	setup := func(t *testing.T) (root, vendor, target string) {
		root = t.TempDir()
		vendor = filepath.Join(root, "vendor")
		require.NoError(t, os.MkdirAll(filepath.Join(vendor, "acme", "widget"), 0755))
		target = filepath.Join(root, "public", "widget")
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		return root, vendor, target
	}

	t.Run("missing", func(t *testing.T) {
		_, vendor, target := setup(t)
		st := Inspect(fsys, pkg, target, vendor)
		assert.Equal(t, StateMissing, st.State)
		assert.Equal(t, filepath.Join("..", "vendor", "acme", "widget"), st.Expected)
	})

	t.Run("linked", func(t *testing.T) {
		_, vendor, target := setup(t)
		require.NoError(t, os.Symlink(filepath.Join("..", "vendor", "acme", "widget"), target))
		st := Inspect(fsys, pkg, target, vendor)
		assert.Equal(t, StateLinked, st.State)
		assert.Equal(t, st.Expected, st.Actual)
	})

	t.Run("stale", func(t *testing.T) {
		_, vendor, target := setup(t)
		require.NoError(t, os.Symlink("../old/widget", target))
		st := Inspect(fsys, pkg, target, vendor)
		assert.Equal(t, StateStale, st.State)
		assert.Equal(t, "../old/widget", st.Actual)
	})

	t.Run("occupied", func(t *testing.T) {
		_, vendor, target := setup(t)
		require.NoError(t, os.MkdirAll(target, 0755))
		st := Inspect(fsys, pkg, target, vendor)
		assert.Equal(t, StateOccupied, st.State)
	})

	t.Run("source_missing", func(t *testing.T) {
		_, vendor, target := setup(t)
		st := Inspect(fsys, types.Package{Name: "acme/gone"}, target, vendor)
		assert.Equal(t, StateSourceMissing, st.State)
	})

	t.Run("install_path_elsewhere", func(t *testing.T) {
		root, vendor, target := setup(t)
		elsewhere := filepath.Join(root, "custom", "widget")
		moved := pkg
		moved.Path = elsewhere
		st := Inspect(fsys, moved, target, vendor)
		assert.Equal(t, elsewhere, st.InstalledAt)
	})

	t.Run("install_path_matches_source", func(t *testing.T) {
		_, vendor, target := setup(t)
		require.NoError(t, os.MkdirAll(filepath.Join(vendor, "composer"), 0755))
		same := pkg
		same.Path = filepath.Join(vendor, "composer", "..", "acme", "widget")
		st := Inspect(fsys, same, target, vendor)
		assert.Empty(t, st.InstalledAt)
	})

	t.Run("does_not_mutate", func(t *testing.T) {
		root, vendor, _ := setup(t)
		target := filepath.Join(root, "not", "yet", "widget")
		_ = Inspect(fsys, pkg, target, vendor)
		_, err := os.Lstat(filepath.Join(root, "not"))
		assert.True(t, os.IsNotExist(err))
	})
}
