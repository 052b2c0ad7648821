package pathutil

import (
	"log/slog"

	"github.com/chaisql/pathcodec/store"
)

// OpenStore is a helper function that takes raw unvalidated parameters and opens a path store.
// An empty dir or ":memory:" opens an in-memory store.
func OpenStore(dir string) (*store.Store, error) {
	if dir == ":memory:" {
		dir = ""
	}

	slog.Debug("opening store", "dir", dir)
	return store.Open(dir, &store.Options{
		Logger: slog.Default(),
	})
}
