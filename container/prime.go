package container

import (
	"iter"

	"github.com/amp-labs/magiccontainer/assert"
	"github.com/amp-labs/magiccontainer/optional"
	"github.com/amp-labs/magiccontainer/primes"
	"github.com/amp-labs/magiccontainer/sortable"
	"github.com/amp-labs/magiccontainer/zero"
)

// PrimeCursor walks a store's elements in ascending order, visiting only the
// prime values. Whenever the cursor is at rest, it either points at a prime or
// is exhausted (its index equals the store's size).
type PrimeCursor struct {
	store *Store
	j     int
}

// Compile-time check that PrimeCursor can be ordered by index.
var _ sortable.Sortable[*PrimeCursor] = (*PrimeCursor)(nil)

// NewPrimeCursor returns a cursor at the smallest prime of store, or an
// exhausted cursor if the store holds no primes.
func NewPrimeCursor(store *Store) *PrimeCursor {
	assert.True(store != nil, "container: prime cursor requires a store")

	c := &PrimeCursor{store: store}
	c.skipComposites()

	return c
}

// skipComposites moves forward until the cursor points at a prime or runs off the end.
func (c *PrimeCursor) skipComposites() {
	for c.j < c.store.Size() && !primes.IsPrime(c.store.elements[c.j]) {
		c.j++
	}
}

// Begin returns a new cursor over the same store, positioned at the first prime.
func (c *PrimeCursor) Begin() *PrimeCursor {
	return NewPrimeCursor(c.store)
}

// End returns a new cursor over the same store, in the exhausted state.
func (c *PrimeCursor) End() *PrimeCursor {
	return &PrimeCursor{store: c.store, j: c.store.Size()}
}

// Position returns the index of the store's sequence the cursor points at.
func (c *PrimeCursor) Position() int {
	return c.j
}

// Done reports whether the cursor is exhausted.
func (c *PrimeCursor) Done() bool {
	return c.j >= c.store.Size()
}

// Peek returns the current prime, or None if the cursor is exhausted.
func (c *PrimeCursor) Peek() optional.Value[int] {
	v, ok := c.store.at(c.j)
	if !ok {
		return optional.None[int]()
	}

	return optional.Some(v)
}

// Value returns the current prime. Reading an exhausted cursor fails with
// ErrOutOfRange.
func (c *PrimeCursor) Value() (int, error) {
	v, ok := c.Peek().Get()
	if !ok {
		return zero.Value[int](), errOutOfRange(kindPrime, c.j, c.store.Size())
	}

	return v, nil
}

// Next moves the cursor to the next prime, or to the exhausted state when no
// prime follows. Advancing an exhausted cursor fails with ErrEndOfSequence.
func (c *PrimeCursor) Next() error {
	size := c.store.Size()

	if c.j >= size {
		return errEndOfSequence(kindPrime, c.j, size)
	}

	c.j++
	c.skipComposites()

	if c.j > size {
		c.j = size
	}

	return nil
}

// Assign moves c to the index of other. Both cursors must be bound to the
// same store, otherwise ErrCrossContainer is returned and c is unchanged.
func (c *PrimeCursor) Assign(other *PrimeCursor) error {
	if c.store != other.store {
		return errCrossContainer(kindPrime)
	}

	c.j = other.j

	return nil
}

// Equals compares the values the cursors point at rather than their indices:
// two cursors at different indices holding equal primes are equal. Two
// exhausted cursors are equal, and an exhausted cursor never equals one that
// is not. Cursors over different stores may be compared.
func (c *PrimeCursor) Equals(other *PrimeCursor) bool {
	mine, mineOk := c.Peek().Get()
	theirs, theirsOk := other.Peek().Get()

	switch {
	case !mineOk && !theirsOk:
		return true
	case !mineOk || !theirsOk:
		return false
	default:
		return mine == theirs
	}
}

// AtPosition reports whether the cursor points at the raw index pos.
func (c *PrimeCursor) AtPosition(pos int) bool {
	return c.j == pos
}

// LessThan reports whether c is at a lower index than other.
func (c *PrimeCursor) LessThan(other *PrimeCursor) bool {
	return c.j < other.j
}

// LessOrEqual reports whether c is at the same or a lower index than other.
func (c *PrimeCursor) LessOrEqual(other *PrimeCursor) bool {
	return c.j <= other.j
}

// GreaterThan reports whether c is at a higher index than other.
func (c *PrimeCursor) GreaterThan(other *PrimeCursor) bool {
	return c.j > other.j
}

// GreaterOrEqual reports whether c is at the same or a higher index than other.
func (c *PrimeCursor) GreaterOrEqual(other *PrimeCursor) bool {
	return c.j >= other.j
}

// All returns an iterator over a fresh prime traversal of the store.
// It does not move c.
func (c *PrimeCursor) All() iter.Seq[int] {
	return primes.Filter(c.store.Seq())
}
