package main

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0-dev"

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := outWriter(cmd)
			fmt.Fprintf(w, "version: %s\n", version)
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(w, "go:      %s\n", info.GoVersion)
			}
			return nil
		},
	}
}
