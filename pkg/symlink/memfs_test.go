package symlink

import (
	"bytes"
	"io/fs"
	"runtime"
	"syscall"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/testutil"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

func memInstaller(t *testing.T, m *testutil.MemoryFS) *Installer {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("in-memory fixtures use slash paths")
	}
	return NewInstaller(m, zerolog.New(&bytes.Buffer{}))
}

var memWidget = types.Package{Name: "acme/widget", Type: "component"}

func TestInstallMem_NamedPipeIsOccupied(t *testing.T) {
	m := testutil.NewMemoryFS().
		AddDir("/p/vendor/acme/widget").
		AddEntry("/p/public/widget", fs.ModeNamedPipe|0600)

	res := memInstaller(t, m).Install(memWidget, "/p/public/widget", "/p/vendor")

	assert.Equal(t, SkippedTargetOccupied, res.Outcome)
	assert.Equal(t, "other", errors.GetErrorDetails(res.Err)["kind"])
	info, err := m.Lstat("/p/public/widget")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeNamedPipe)
}

func TestInstallMem_SymlinkedInstallRoot(t *testing.T) {
	m := testutil.NewMemoryFS().AddDir("/real/vendor/acme/widget").AddDir("/p")
	require.NoError(t, m.Symlink("/real/vendor", "/p/vendor"))

	res := memInstaller(t, m).Install(memWidget, "/p/public/widget", "/p/vendor")

	require.Equal(t, Created, res.Outcome)
	assert.Equal(t, "../../real/vendor/acme/widget", res.LinkTarget)
	resolved, err := m.EvalSymlinks("/p/public/widget")
	require.NoError(t, err)
	assert.Equal(t, "/real/vendor/acme/widget", resolved)
}

func TestInstallMem_InjectedFailures(t *testing.T) {
	t.Run("mkdir", func(t *testing.T) {
		m := testutil.NewMemoryFS().AddDir("/p/vendor/acme/widget")
		m.FailOn("mkdir", "/p/public", syscall.EROFS)

		res := memInstaller(t, m).Install(memWidget, "/p/public/widget", "/p/vendor")

		assert.Equal(t, FailedMkdir, res.Outcome)
		assert.True(t, errors.IsErrorCode(res.Err, errors.ErrDirCreate))
		assert.ErrorIs(t, res.Err, syscall.EROFS)
	})

	t.Run("remove stale link", func(t *testing.T) {
		m := testutil.NewMemoryFS().AddDir("/p/vendor/acme/widget").AddDir("/p/public")
		require.NoError(t, m.Symlink("/old", "/p/public/widget"))
		m.FailOn("remove", "/p/public/widget", syscall.EBUSY)

		res := memInstaller(t, m).Install(memWidget, "/p/public/widget", "/p/vendor")

		assert.Equal(t, FailedLink, res.Outcome)
		assert.True(t, errors.IsErrorCode(res.Err, errors.ErrSymlinkRemove))
		dest, err := m.Readlink("/p/public/widget")
		require.NoError(t, err)
		assert.Equal(t, "/old", dest)
	})

	t.Run("unreadable target", func(t *testing.T) {
		m := testutil.NewMemoryFS().AddDir("/p/vendor/acme/widget").AddDir("/p/public")
		m.FailOn("lstat", "/p/public/widget", syscall.EACCES)

		res := memInstaller(t, m).Install(memWidget, "/p/public/widget", "/p/vendor")

		assert.Equal(t, SkippedTargetOccupied, res.Outcome)
		assert.Equal(t, "unknown", errors.GetErrorDetails(res.Err)["kind"])
	})
}
