package data

import (
	"fmt"
	"strings"
)

// nameIndex builds an upper-case name lookup for an enum of count values.
func nameIndex[T ~int](count T, name func(T) string) map[string]T {
	m := make(map[string]T, int(count))
	for v := T(0); v < count; v++ {
		if n := name(v); n != "" {
			m[strings.ToUpper(n)] = v
		}
	}
	return m
}

// parseNames resolves a YAML name list against an index. Unknown names are
// reported through warn and skipped.
func parseNames[T ~int](names []string, index map[string]T, what string, warn func(string)) []T {
	out := make([]T, 0, len(names))
	for _, n := range names {
		v, ok := index[strings.ToUpper(strings.TrimSpace(n))]
		if !ok {
			warn(fmt.Sprintf("unknown %s %q", what, n))
			continue
		}
		out = append(out, v)
	}
	return out
}
