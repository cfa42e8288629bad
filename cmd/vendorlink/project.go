package vendorlink

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/pkg/config"
	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/filesystem"
	"github.com/arthur-debert/vendorlink/pkg/logging"
	"github.com/arthur-debert/vendorlink/pkg/metrics"
	"github.com/arthur-debert/vendorlink/pkg/provision"
	"github.com/arthur-debert/vendorlink/pkg/style"
)

// loadProject resolves settings and the manifest for the selected root
func loadProject(opts *globalOptions) (*config.Project, error) {
	settings, err := config.LoadSettings(config.LoadOptions{
		Root:       opts.root,
		ConfigFile: opts.configFile,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("root", settings.Project.Root).
		Str("manifest", settings.ManifestPath()).
		Msg("Settings loaded")

	return config.LoadProject(settings)
}

// newEngine builds a fresh engine for one provisioning run
func newEngine(p *config.Project, rec *metrics.Recorder) *provision.Engine {
	return provision.New(provision.Options{
		FS:          filesystem.NewOS(),
		Logger:      logging.GetLogger("provision"),
		Rules:       p.Rules,
		ProjectRoot: p.Settings.Project.Root,
		InstallRoot: p.VendorDir,
		Metrics:     rec,
	})
}

// renderer returns the renderer for cmd's output stream
func renderer(cmd *cobra.Command, opts *globalOptions) style.Renderer {
	return style.NewRenderer(style.Resolve(opts.format, os.Stdout), cmd.OutOrStdout())
}

// exportMetrics writes the textfile when one is configured. Failures are
// logged; metrics never change the command's result.
func exportMetrics(p *config.Project, rec *metrics.Recorder) {
	path := p.Settings.Metrics.Textfile
	if path == "" {
		return
	}
	path = p.Settings.Resolve(path)
	logger := logging.GetLogger("metrics")
	if err := rec.WriteTextfile(path); err != nil {
		logger.Warn().Err(errors.Wrap(err, errors.ErrInternal, MsgErrMetrics)).Str("path", path).Msg("Metrics export failed")
		return
	}
	logger.Debug().Str("path", path).Msg("Metrics written")
}
