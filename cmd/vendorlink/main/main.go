package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/vendorlink/cmd/vendorlink"
	"github.com/arthur-debert/vendorlink/pkg/style"
)

func main() {
	rootCmd := vendorlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		out := style.NewRenderer(style.DetectFormat(os.Stderr), os.Stderr)
		if rerr := out.RenderError(err); rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
