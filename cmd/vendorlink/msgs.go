package vendorlink

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Symlink installed dependency packages into your project"
	MsgRecreateShort   = "Recreate symlinks for all installed packages"
	MsgStatusShort     = "Show the symlink state of matching packages"
	MsgWatchShort      = "Provision symlinks as packages are installed or updated"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoConfig       = "[muted]No symlink-paths configuration found.[/muted]"
	MsgNoPackages     = "[muted]No installed packages found in %s[/muted]"
	MsgWatchStarted   = "Watching [path]%s[/path] (Ctrl-C to stop)"
	MsgVersionFormat  = "vendorlink version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCommandGiven = "no command specified"

	// Error messages
	MsgErrMetrics = "failed to write metrics textfile"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Project root (default: current directory)"
	MsgFlagConfig  = "Settings file (default: vendorlink.toml in the project root)"
	MsgFlagOutput  = "Output format: auto, text, term or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/recreate-long.txt
	msgRecreateLongRaw string
	MsgRecreateLong    = strings.TrimSpace(msgRecreateLongRaw)

	//go:embed msgs/recreate-example.txt
	msgRecreateExampleRaw string
	MsgRecreateExample    = strings.TrimRight(msgRecreateExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

// Help topics shown by `vendorlink help <topic>`
//
//go:embed topics
var topicsFS embed.FS
