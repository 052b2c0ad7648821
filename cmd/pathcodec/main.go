package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chaisql/pathcodec/cmd/pathcodec/commands"
	"github.com/cockroachdb/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := commands.NewApp()

	err := app.Run(ctx, os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			_, _ = fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		stop()
		os.Exit(2)
	}
}
