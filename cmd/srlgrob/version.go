package main

import (
	"fmt"
)

// Set via -ldflags at build time.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "srlgrob version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
