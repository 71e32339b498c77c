// Package foundation holds small generic helpers shared by the config and
// sitemap packages.
package foundation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely spelled configuration strings ("Weekly ",
// "DAILY") onto a closed set of typed values.
type Normalizer[T comparable] struct {
	values map[string]T
}

func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		n.values[canonical(k)] = v
	}
	return n
}

// Normalize returns the value for raw. Unknown input is an error listing
// the accepted spellings.
func (n *Normalizer[T]) Normalize(raw string) (T, error) {
	if v, ok := n.values[canonical(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (expected one of: %s)", raw, strings.Join(n.Keys(), ", "))
}

// Keys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) Keys() []string {
	return slices.Sorted(maps.Keys(n.values))
}
