package pathutil

import (
	"fmt"
	"io"
	"slices"

	"github.com/chaisql/pathcodec"
	"golang.org/x/exp/maps"
)

// Stats writes the number of records of each kind found in data,
// followed by the totals.
func Stats(w io.Writer, data []byte) error {
	counts, err := pathcodec.Count(data)
	if err != nil {
		return err
	}

	kinds := maps.Keys(counts)
	slices.Sort(kinds)

	var total int
	for _, k := range kinds {
		total += counts[k]
		if _, err := fmt.Fprintf(w, "%c  %-15s  %d\n", byte(k), k, counts[k]); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "records: %d\nsubpaths: %d\nbytes: %d\n", total, counts[pathcodec.Move], len(data))
	return err
}
