package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewApp creates the pathcodec CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "pathcodec",
		Usage: "Encode, decode and store binary vector path streams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "minimum level of the diagnostics written to stderr: debug, info, warn or error.",
				Value:   "warn",
				Sources: cli.EnvVars("PATHCODEC_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "shorthand for --log-level debug.",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := parseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
				Level: level,
			})))
			return ctx, nil
		},
		Commands: []*cli.Command{
			NewEncodeCommand(),
			NewDecodeCommand(),
			NewDumpCommand(),
			NewStatsCommand(),
			NewCheckCommand(),
			NewRenderCommand(),
			NewStoreCommand(),
			NewVersionCommand(),
		},
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(s)))
	return level, errors.Wrapf(err, "invalid log level %q", s)
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "name of the file to output to. Defaults to STDOUT.",
	}
}
