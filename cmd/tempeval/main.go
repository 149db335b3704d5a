package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Set by the stave build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := newRootCmd()
	if err := fang.Execute(context.Background(), root, fang.WithVersion(versionString())); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	return version + " (" + commit + ", " + date + ")"
}
