// Command vendorlink-manpage renders the vendorlink man pages. With no
// argument the root page is written to stdout; with a directory argument
// one page per command is written there.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/vendorlink/cmd/vendorlink"
	"github.com/arthur-debert/vendorlink/internal/version"
)

func header() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "VENDORLINK",
		Section: "1",
		Source:  "vendorlink " + version.Version,
		Manual:  "vendorlink manual",
	}
}

func generate(w io.Writer, dir string) error {
	rootCmd := vendorlink.NewRootCmd()
	rootCmd.DisableAutoGenTag = true
	if dir == "" {
		return doc.GenMan(rootCmd, header(), w)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return doc.GenManTree(rootCmd, header(), dir)
}

func main() {
	var dir string
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := generate(os.Stdout, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
