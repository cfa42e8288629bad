package vendorlink

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/pkg/packages"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
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

			engine := newEngine(project, nil)
			out := renderer(cmd, opts)
			if !engine.HasRules() {
				return out.RenderMessage(MsgNoConfig)
			}
			return out.RenderStatus(engine.Status(pkgs))
		},
	}
}
