// Package sortable defines the ordering contract shared by types which can
// be both compared for equality and ordered.
//
// The cursors in package container implement it: ascending and prime cursors
// order by position, so two cursors over the same store can be compared with
// LessThan.
package sortable

import (
	"github.com/amp-labs/magiccontainer/compare"
)

// Sortable extends compare.Comparable with a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less reports whether a sorts before b.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. Equality is checked first, so types whose Equals is not
// based on their ordering (see container.PrimeCursor) report 0 when equal.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
