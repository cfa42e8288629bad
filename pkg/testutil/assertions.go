package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that link is a symlink resolving to want
func AssertSymlink(t testing.TB, link, want string) {
	t.Helper()
	info, err := os.Lstat(link)
	require.NoError(t, err, "link %s", link)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "%s is not a symlink", link)

	got, err := filepath.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

// AssertNotExist checks that nothing exists at path, not even a dangling link
func AssertNotExist(t testing.TB, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist (err=%v)", path, err)
}
