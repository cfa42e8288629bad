package vendorlink

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/pkg/metrics"
	"github.com/arthur-debert/vendorlink/pkg/packages"
)

func newRecreateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "recreate",
		Aliases: []string{"symlink-recreate-all"},
		Short:   MsgRecreateShort,
		Long:    MsgRecreateLong,
		Example: MsgRecreateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(opts)
			if err != nil {
				return err
			}
			pkgs, err := packages.Load(project.InstalledPath)
			if err != nil {
				return err
			}

			rec := metrics.NewRecorder()
			engine := newEngine(project, rec)
			results := engine.ProvisionAll(pkgs)
			exportMetrics(project, rec)

			out := renderer(cmd, opts)
			switch {
			case !engine.HasRules():
				return out.RenderMessage(MsgNoConfig)
			case len(pkgs) == 0:
				return out.RenderMessage(fmt.Sprintf(MsgNoPackages, project.InstalledPath))
			default:
				return out.RenderResults(results)
			}
		},
	}
}
