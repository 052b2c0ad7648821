package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "pathcodec version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows pathcodec version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Fprintln(cmd.Root().Writer, `version not available in GOPATH mode; use "go install" with Go modules enabled`)
				return nil
			}

			version := info.Main.Version
			if version == "" {
				version = "(devel)"
			}
			fmt.Fprintf(cmd.Root().Writer, "pathcodec %v %v\n", version, info.GoVersion)
			return nil
		},
	}
}
