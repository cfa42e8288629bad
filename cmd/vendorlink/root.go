package vendorlink

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/internal/version"
	"github.com/arthur-debert/vendorlink/pkg/cobrax/topics"
	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/logging"
	"github.com/arthur-debert/vendorlink/pkg/style"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	root       string
	configFile string
	output     string
	format     style.Format
}

// NewRootCmd creates the vendorlink command tree
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "vendorlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := style.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "auto", MsgFlagOutput)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRecreateCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded help topics. Markdown is rendered with
// glamour only when stdout is a styled terminal.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.DetectFormat(os.Stdout) == style.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	topics.Install(rootCmd, tm)
}
