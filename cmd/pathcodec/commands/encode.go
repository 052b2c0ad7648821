package commands

import (
	"context"
	"log/slog"

	"github.com/chaisql/pathcodec/cmd/pathcodec/pathutil"
	"github.com/urfave/cli/v3"
)

// NewEncodeCommand returns a cli.Command for "pathcodec encode".
func NewEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode SVG path data or a JSON element list into a binary stream.",
		UsageText: `pathcodec encode [options] [file]`,
		Description: `The encode command reads a textual path description and writes its binary encoding.

By default, the input is read from the standard input as SVG path data:

$ echo "M0 0L10 0L10 10Z" | pathcodec encode -o square.path

JSON element lists are read with --from json:

$ pathcodec encode --from json -o square.path square.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "format of the input: svg or json.",
				Value:   pathutil.FormatSVG,
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().First())
			if err != nil {
				return err
			}

			data, err := pathutil.Encode(src, cmd.String("from"))
			if err != nil {
				return err
			}

			slog.Debug("encoded path", "from", cmd.String("from"), "bytes", len(data))
			return pathutil.WriteOutput(cmd.Root().Writer, cmd.String("output"), data)
		},
	}
}

// NewDecodeCommand returns a cli.Command for "pathcodec decode".
func NewDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a binary stream into SVG path data, a JSON element list or plain text.",
		UsageText: `pathcodec decode [options] [file]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "format of the output: svg, json or text.",
				Value:   pathutil.FormatSVG,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().First())
			if err != nil {
				return err
			}

			return pathutil.Decode(cmd.Root().Writer, data, cmd.String("to"))
		},
	}
}
