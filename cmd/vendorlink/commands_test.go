package vendorlink

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/testutil"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

const widgetManifest = `{
    "name": "acme/site",
    "extra": {
        "symlink-paths": {
            "public/widget": "type:component"
        }
    }
}`

var widgetInstalled = testutil.InstalledJSON(
	types.Package{Name: "acme/widget", Version: "1.0.0", Type: "component"},
	types.Package{Name: "acme/lib", Version: "2.0.0", Type: "library"},
)

// newProject lays out a project root with a manifest, an installed.json and
// the installed package directories
func newProject(t *testing.T, manifest, installed string) string {
	t.Helper()
	p := testutil.SetupProject(t).AddPackage("acme/widget").AddPackage("acme/lib")
	if manifest != "" {
		p.WriteManifest(manifest)
	}
	if installed != "" {
		p.WriteInstalled(installed)
	}
	return p.Root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecreate_CreatesSymlinks(t *testing.T) {
	root := newProject(t, widgetManifest, widgetInstalled)

	out, err := execute(t, "recreate", "--root", root, "--output", "json")
	require.NoError(t, err)

	testutil.AssertSymlink(t, filepath.Join(root, "public", "widget"), filepath.Join(root, "vendor", "acme", "widget"))

	var doc struct {
		Results []struct {
			Package    string `json:"package"`
			Outcome    string `json:"outcome"`
			LinkTarget string `json:"link_target"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1, "only matching packages are reported")
	assert.Equal(t, "acme/widget", doc.Results[0].Package)
	assert.Equal(t, "created", doc.Results[0].Outcome)
	assert.Equal(t, filepath.Join("..", "vendor", "acme", "widget"), doc.Results[0].LinkTarget)
}

func TestRecreate_AliasAndIdempotence(t *testing.T) {
	root := newProject(t, widgetManifest, widgetInstalled)

	_, err := execute(t, "symlink-recreate-all", "--root", root, "--output", "text")
	require.NoError(t, err)
	out, err := execute(t, "symlink-recreate-all", "--root", root, "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "created acme/widget")
	assert.Contains(t, out, "1 created, 0 skipped, 0 failed")
}

func TestRecreate_NoConfiguration(t *testing.T) {
	root := newProject(t, `{"name": "acme/site"}`, widgetInstalled)

	out, err := execute(t, "recreate", "--root", root, "--output", "text")
	require.NoError(t, err)

	assert.Equal(t, "No symlink-paths configuration found.\n", out)
	testutil.AssertNotExist(t, filepath.Join(root, "public"))
}

func TestRecreate_OccupiedTargetStillSucceeds(t *testing.T) {
	root := newProject(t, widgetManifest, widgetInstalled)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "public", "widget"), 0755))

	out, err := execute(t, "recreate", "--root", root, "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "skipped_target_occupied acme/widget")
	info, err := os.Lstat(filepath.Join(root, "public", "widget"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRecreate_ConfigErrors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		root := newProject(t, "", widgetInstalled)
		_, err := execute(t, "recreate", "--root", root)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestNotFound))
	})

	t.Run("invalid criterion", func(t *testing.T) {
		root := newProject(t, `{"extra": {"symlink-paths": {"public/x": "vendor:"}}}`, widgetInstalled)
		_, err := execute(t, "recreate", "--root", root)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("unknown output format", func(t *testing.T) {
		root := newProject(t, widgetManifest, widgetInstalled)
		_, err := execute(t, "recreate", "--root", root, "--output", "xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestRecreate_WritesMetricsTextfile(t *testing.T) {
	root := newProject(t, widgetManifest, widgetInstalled)
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendorlink.toml"),
		[]byte("[metrics]\ntextfile = \"vendorlink.prom\"\n"), 0644))

	_, err := execute(t, "recreate", "--root", root, "--output", "text")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "vendorlink.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `vendorlink_provision_outcomes_total{outcome="created"} 1`)
	assert.Contains(t, string(data), "vendorlink_provision_runs_total 1")
}

func TestStatus(t *testing.T) {
	root := newProject(t, widgetManifest, widgetInstalled)

	out, err := execute(t, "status", "--root", root, "--output", "text")
	require.NoError(t, err)
	assert.Equal(t, "missing acme/widget: "+filepath.Join(root, "public", "widget")+"\n", out)

	_, err = execute(t, "recreate", "--root", root, "--output", "text")
	require.NoError(t, err)

	out, err = execute(t, "status", "--root", root, "--output", "json")
	require.NoError(t, err)
	var doc struct {
		Statuses []struct {
			Package string `json:"package"`
			State   string `json:"state"`
		} `json:"statuses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Statuses, 1)
	assert.Equal(t, "linked", doc.Statuses[0].State)
}

func TestVersionAndCompletion(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vendorlink version dev\n"), out)

	out, err = execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "vendorlink")
}

func TestNoCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, out, "recreate")
}

func TestHelpTopics(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"configuration", "placeholders", "rules", "--output"} {
		assert.Contains(t, out, "  "+topic+"\n")
	}

	out, err = execute(t, "help", "placeholders")
	require.NoError(t, err)
	assert.Contains(t, out, "{$package}")

	out, err = execute(t, "help", "recreate")
	require.NoError(t, err)
	assert.Contains(t, out, "symlink-recreate-all")
}

// syncBuffer lets the watch goroutine and the test share output
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_ProvisionsNewPackages(t *testing.T) {
	root := newProject(t, widgetManifest, `{"packages": []}`)
	t.Setenv("VENDORLINK_WATCH_DEBOUNCE", "50ms")

	var out syncBuffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"watch", "--root", root, "--output", "text"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching")
	}, 5*time.Second, 10*time.Millisecond)

	installed := filepath.Join(root, "vendor", "composer", "installed.json")
	require.NoError(t, os.WriteFile(installed, []byte(widgetInstalled), 0644))

	link := filepath.Join(root, "public", "widget")
	require.Eventually(t, func() bool {
		_, err := os.Lstat(link)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, out.String(), "created acme/widget")
}
