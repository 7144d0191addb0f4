package lister

import (
	"errors"
	"strings"
)

var ErrNegativeMaxResults = errors.New("max results must not be negative")

// Named is anything that can be listed by name.
type Named interface {
	Name() string
}

// Query holds the optional listing filters. Zero values mean "not set".
type Query struct {
	Prefix string
	// StartOffset is an inclusive lower bound on the name.
	StartOffset string
	// EndOffset is an exclusive upper bound on the name.
	EndOffset  string
	MaxResults int
}

func (q Query) Validate() error {
	if q.MaxResults < 0 {
		return ErrNegativeMaxResults
	}

	return nil
}

// Match reports whether name falls inside the query range.
func (q Query) Match(name string) bool {
	if q.StartOffset != "" && name < q.StartOffset {
		return false
	}
	if q.EndOffset != "" && name >= q.EndOffset {
		return false
	}

	return strings.HasPrefix(name, q.Prefix)
}

// List returns the items matching q, in input order, truncated to
// q.MaxResults when it is positive. Offsets are compared as bounds, so an
// offset does not have to name an existing item.
func List[T Named](items []T, q Query) []T {
	out := make([]T, 0, capHint(len(items), q.MaxResults))
	for _, item := range items {
		if q.MaxResults > 0 && len(out) == q.MaxResults {
			break
		}
		if q.Match(item.Name()) {
			out = append(out, item)
		}
	}

	return out
}

func capHint(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}

	return n
}
