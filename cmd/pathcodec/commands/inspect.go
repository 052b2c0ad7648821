package commands

import (
	"context"

	"github.com/chaisql/pathcodec/cmd/pathcodec/pathutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewDumpCommand returns a cli.Command for "pathcodec dump".
func NewDumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "List the records of a binary stream with their offsets.",
		UsageText: `pathcodec dump [file]`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().First())
			if err != nil {
				return err
			}

			return pathutil.Dump(cmd.Root().Writer, data)
		},
	}
}

// NewStatsCommand returns a cli.Command for "pathcodec stats".
func NewStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Count the records of a binary stream by kind.",
		UsageText: `pathcodec stats [file]`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().First())
			if err != nil {
				return err
			}

			return pathutil.Stats(cmd.Root().Writer, data)
		},
	}
}

// NewCheckCommand returns a cli.Command for "pathcodec check".
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate the structure of one or more binary streams.",
		UsageText: `pathcodec check file...`,
		Description: `The check command decodes every file concurrently and reports,
for each of them, either "ok" or the offset of the first malformed record.
It exits with an error if any file is malformed.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return errors.New(cmd.UsageText)
			}

			return pathutil.Check(ctx, cmd.Root().Writer, names)
		},
	}
}

// NewRenderCommand returns a cli.Command for "pathcodec render".
func NewRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Rasterize a binary stream into a PNG alpha mask.",
		UsageText: `pathcodec render [options] [file]`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Usage: "width of the image in pixels.",
				Value: 256,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "height of the image in pixels.",
				Value: 256,
			},
			&cli.IntFlag{
				Name:  "margin",
				Usage: "margin in pixels left around the path.",
				Value: 8,
			},
			&cli.BoolFlag{
				Name:  "no-fit",
				Usage: "map path units to pixels instead of scaling the path to the image.",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			data, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().First())
			if err != nil {
				return err
			}

			out, err := createOutput(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := out.close(err != nil); cerr != nil && err == nil {
					err = cerr
				}
			}()

			return pathutil.Render(out, data, pathutil.RenderOptions{
				Width:  int(cmd.Int("width")),
				Height: int(cmd.Int("height")),
				Margin: float64(cmd.Int("margin")),
				Fit:    !cmd.Bool("no-fit"),
			})
		},
	}
}
