package vendorlink

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/pkg/logging"
	"github.com/arthur-debert/vendorlink/pkg/metrics"
	"github.com/arthur-debert/vendorlink/pkg/packages"
	"github.com/arthur-debert/vendorlink/pkg/provision"
	"github.com/arthur-debert/vendorlink/pkg/types"
	"github.com/arthur-debert/vendorlink/pkg/watch"
)

func newWatchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := renderer(cmd, opts)
			if len(project.Rules) == 0 {
				return out.RenderMessage(MsgNoConfig)
			}

			// Counters accumulate for the life of the watch
			rec := metrics.NewRecorder()
			tracker, err := provision.NewTracker(
				func() ([]types.Package, error) { return packages.Load(project.InstalledPath) },
				func() *provision.Engine { return newEngine(project, rec) },
			)
			if err != nil {
				return err
			}

			w, err := watch.New(watch.Config{
				File:     project.InstalledPath,
				Debounce: project.Settings.Watch.Debounce,
				Logger:   logging.GetLogger("watch"),
				OnChange: func(context.Context) error {
					results, err := tracker.Sync()
					if err != nil {
						return err
					}
					if len(results) == 0 {
						return nil
					}
					rec.ObserveRun()
					exportMetrics(project, rec)
					return out.RenderResults(results)
				},
			})
			if err != nil {
				return err
			}

			if err := out.RenderMessage(fmt.Sprintf(MsgWatchStarted, project.InstalledPath)); err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
}
