package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chaisql/pathcodec/cmd/pathcodec/pathutil"
	"github.com/chaisql/pathcodec/store"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewStoreCommand returns a cli.Command for "pathcodec store".
func NewStoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "store",
		Usage: "Manage named paths in a path store.",
		Description: `The store command keeps binary streams under a name in a Pebble database.

$ pathcodec store --db paths.db put logo logo.path
$ pathcodec store --db paths.db ls
$ pathcodec store --db paths.db get logo | pathcodec decode`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "directory of the path store.",
				Value:   "paths.db",
				Sources: cli.EnvVars("PATHCODEC_DB"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "put",
				Usage:     "Validate a binary stream and store it under a name.",
				UsageText: `pathcodec store put name [file]`,
				Action: withStore(func(ctx context.Context, cmd *cli.Command, s *store.Store) error {
					name := cmd.Args().First()
					if name == "" {
						return errors.New(cmd.UsageText)
					}

					data, err := pathutil.ReadInput(cmd.Root().Reader, cmd.Args().Get(1))
					if err != nil {
						return err
					}

					err = s.Put(name, data)
					if err != nil {
						return err
					}

					slog.Info("stored path", "name", name, "bytes", len(data))
					return nil
				}),
			},
			{
				Name:      "get",
				Usage:     "Write the binary stream stored under a name.",
				UsageText: `pathcodec store get [-o file] name`,
				Flags:     []cli.Flag{outputFlag()},
				Action: withStore(func(ctx context.Context, cmd *cli.Command, s *store.Store) error {
					name := cmd.Args().First()
					if name == "" {
						return errors.New(cmd.UsageText)
					}

					data, err := s.Get(name)
					if err != nil {
						return pathutil.WithStoreSuggestions(s, name, err)
					}

					return pathutil.WriteOutput(cmd.Root().Writer, cmd.String("output"), data)
				}),
			},
			{
				Name:      "ls",
				Usage:     "List the stored paths.",
				UsageText: `pathcodec store ls [prefix]`,
				Action: withStore(func(ctx context.Context, cmd *cli.Command, s *store.Store) error {
					entries, err := s.List(cmd.Args().First())
					if err != nil {
						return err
					}

					for _, e := range entries {
						fmt.Fprintln(cmd.Root().Writer, e)
					}
					return nil
				}),
			},
			{
				Name:      "rm",
				Usage:     "Remove one or more stored paths. Nothing is removed if one of them is missing.",
				UsageText: `pathcodec store rm name...`,
				Action: withStore(func(ctx context.Context, cmd *cli.Command, s *store.Store) error {
					if cmd.Args().Len() == 0 {
						return errors.New(cmd.UsageText)
					}

					names := cmd.Args().Slice()
					err := s.DeleteAll(names...)
					if errors.Is(err, store.ErrPathNotFound) {
						for _, name := range names {
							if _, serr := s.Stat(name); errors.Is(serr, store.ErrPathNotFound) {
								return pathutil.WithStoreSuggestions(s, name, err)
							}
						}
					}
					return err
				}),
			},
			{
				Name:      "mv",
				Usage:     "Rename a stored path.",
				UsageText: `pathcodec store mv old new`,
				Action: withStore(func(ctx context.Context, cmd *cli.Command, s *store.Store) error {
					if cmd.Args().Len() != 2 {
						return errors.New(cmd.UsageText)
					}

					err := s.Rename(cmd.Args().Get(0), cmd.Args().Get(1))
					return pathutil.WithStoreSuggestions(s, cmd.Args().Get(0), err)
				}),
			},
		},
	}
}

// withStore opens the store selected by the db flag for the duration of fn.
func withStore(fn func(ctx context.Context, cmd *cli.Command, s *store.Store) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) (err error) {
		s, err := pathutil.OpenStore(cmd.String("db"))
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		return fn(ctx, cmd, s)
	}
}
