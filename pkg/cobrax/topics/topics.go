// Package topics adds file-backed help topics to a cobra command tree.
// Topics are read from an fs.FS (usually embedded) and shown through
// `<app> help <topic>` next to the regular command help.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Manager holds the topics found in a filesystem
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics. Defaults to .txt and .md
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer
	Renderer Renderer
}

// New scans fsys for topic files. A topic's name is its base file name
// without extension.
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get looks a topic up by name. Flag-style names (--output) also match
// an "option-" topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics["option-"+name]
	return t, ok
}

// List returns the topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

// Install replaces rootCmd's help command with one that also knows topics
func Install(rootCmd *cobra.Command, m *Manager) {
	name := rootCmd.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + name + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + name + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.List()...), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return rootCmd.Help()
			}
			if args[0] == "topics" {
				m.writeList(cmd, name)
				return nil
			}
			if t, ok := m.Get(args[0]); ok {
				fmt.Fprint(out, m.Render(t))
				return nil
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				fmt.Fprintf(out, "Unknown help topic %q\n", args)
				return rootCmd.Usage()
			}
			return target.Help()
		},
	}
	if rootCmd.ContainsGroup("misc") {
		helpCmd.GroupID = "misc"
	}

	rootCmd.SetHelpCommand(helpCmd)
}

func (m *Manager) writeList(cmd *cobra.Command, app string) {
	out := cmd.OutOrStdout()
	names := m.List()
	if len(names) == 0 {
		fmt.Fprintln(out, "No help topics available.")
		return
	}

	var options, general []string
	for _, n := range names {
		if strings.HasPrefix(n, "option-") {
			options = append(options, strings.TrimPrefix(n, "option-"))
		} else {
			general = append(general, n)
		}
	}

	fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(out, "\nGeneral topics:")
		for _, n := range general {
			fmt.Fprintf(out, "  %s\n", n)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(out, "\nOption topics:")
		for _, n := range options {
			fmt.Fprintf(out, "  --%s\n", n)
		}
	}
	fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}
