package game

import "github.com/pkg/errors"

// lookup finds s in names, used by the UnmarshalText implementations of
// the small enumerations in this package.
func lookup(names []string, kind, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, errors.Errorf("%q is not a %v", s, kind)
}
