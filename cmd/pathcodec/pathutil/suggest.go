package pathutil

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/chaisql/pathcodec/store"
	"github.com/cockroachdb/errors"
)

func shouldSuggest(name, in string) bool {
	// input should be at least half the name size to get a suggestion.
	d := levenshtein.ComputeDistance(name, in)
	return d < (len(name) / 2)
}

// Suggestions returns the candidates close enough to in, in the order of candidates.
func Suggestions(in string, candidates []string) []string {
	var suggestions []string
	for _, c := range candidates {
		if c != in && shouldSuggest(c, in) {
			suggestions = append(suggestions, c)
		}
	}
	return suggestions
}

// WithStoreSuggestions adds a hint listing the stored names close to name
// if err is a store.ErrPathNotFound. Other errors are returned unchanged.
func WithStoreSuggestions(s *store.Store, name string, err error) error {
	if !errors.Is(err, store.ErrPathNotFound) {
		return err
	}

	entries, lerr := s.List("")
	if lerr != nil {
		return err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return withSuggestions(err, name, names)
}

func withSuggestions(err error, in string, candidates []string) error {
	suggestions := Suggestions(in, candidates)
	if len(suggestions) == 0 {
		return err
	}

	return errors.WithHintf(err, "did you mean %s?", strings.Join(quote(suggestions), ", "))
}

func quote(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = `"` + n + `"`
	}
	return out
}
