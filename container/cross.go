package container

import (
	"iter"

	"github.com/amp-labs/magiccontainer/assert"
	"github.com/amp-labs/magiccontainer/compare"
	"github.com/amp-labs/magiccontainer/optional"
	"github.com/amp-labs/magiccontainer/zero"
)

// side records which end of the sorted sequence the current index was taken from.
type side bool

const (
	low  side = true
	high side = false
)

// String returns "low" or "high".
func (s side) String() string {
	if s == low {
		return "low"
	}

	return "high"
}

// CrossCursor alternates between the smallest and the largest elements not yet
// visited: lowest, highest, second lowest, second highest, and so on, folding
// inward until the middle of the sequence is reached.
//
// The length of the store is captured when the cursor is created, and the fold
// runs over that fixed length n. The traversal ends once the index n/2 has been
// visited, which is always the last index the fold reaches. Index n denotes the
// exhausted state.
//
// Creating a CrossCursor re-sorts the store as a side effect.
type CrossCursor struct {
	store *Store
	n     int
	i     int
	side  side
}

// Compile-time check that CrossCursor supports equality. Ordering may fail and
// is exposed through GreaterThan and LessThan instead.
var _ compare.Comparable[*CrossCursor] = (*CrossCursor)(nil)

// NewCrossCursor re-sorts store and returns a cursor at its smallest element.
func NewCrossCursor(store *Store) *CrossCursor {
	assert.True(store != nil, "container: side-cross cursor requires a store")

	store.sort()
	store.log.Debug("side-cross cursor re-sorted container", "size", store.Size())

	return &CrossCursor{
		store: store,
		n:     store.Size(),
		side:  low,
	}
}

// Begin returns a new cursor over the same store and captured length,
// positioned at the smallest element.
func (c *CrossCursor) Begin() *CrossCursor {
	return &CrossCursor{store: c.store, n: c.n, side: low}
}

// End returns a new cursor over the same store and captured length, in the
// exhausted state.
func (c *CrossCursor) End() *CrossCursor {
	return &CrossCursor{store: c.store, n: c.n, i: c.n, side: low}
}

// Position returns the index of the sorted sequence the cursor points at.
func (c *CrossCursor) Position() int {
	return c.i
}

// Done reports whether the cursor is exhausted.
func (c *CrossCursor) Done() bool {
	return c.i == c.n
}

// Peek returns the current element, or None if the cursor is exhausted or
// the store has shrunk below the current index.
func (c *CrossCursor) Peek() optional.Value[int] {
	if c.Done() {
		return optional.None[int]()
	}

	v, ok := c.store.at(c.i)
	if !ok {
		return optional.None[int]()
	}

	return optional.Some(v)
}

// Value returns the current element from the live store. It fails with
// ErrOutOfRange when the cursor is exhausted.
func (c *CrossCursor) Value() (int, error) {
	v, ok := c.Peek().Get()
	if !ok {
		return zero.Value[int](), errOutOfRange(kindCross, c.i, c.n)
	}

	return v, nil
}

// Next moves the cursor to the next index of the fold. Advancing an
// exhausted cursor fails with ErrEndOfSequence.
func (c *CrossCursor) Next() error {
	if c.Done() {
		return errEndOfSequence(kindCross, c.i, c.n)
	}

	c.fold()

	return nil
}

// Advance is the postfix form of Next: it moves the cursor forward and
// returns a copy of the cursor as it was before the move.
func (c *CrossCursor) Advance() (*CrossCursor, error) {
	if c.Done() {
		return nil, errEndOfSequence(kindCross, c.i, c.n)
	}

	prev := *c

	c.fold()

	return &prev, nil
}

// fold computes the next index. The meeting point n/2 is the last index
// visited, for both odd and even n.
func (c *CrossCursor) fold() {
	switch {
	case c.i == c.n/2:
		c.i = c.n
	case c.side == low:
		c.i = c.n - c.i - 1
		c.side = high
	default:
		c.i = c.n - c.i
		c.side = low
	}

	assert.True(c.i >= 0 && c.i <= c.n, "container: side-cross index %d outside [0, %d]", c.i, c.n)
}

// Assign copies the state of other into c. Both cursors must be bound to the
// same store and have captured the same length, otherwise ErrCrossContainer
// is returned and c is unchanged.
func (c *CrossCursor) Assign(other *CrossCursor) error {
	if c.store != other.store || c.n != other.n {
		return errCrossContainer(kindCross)
	}

	c.i = other.i
	c.side = other.side

	return nil
}

// Equals reports whether both cursors are bound to the same store and point
// at the same index.
func (c *CrossCursor) Equals(other *CrossCursor) bool {
	return c.store == other.store && c.i == other.i
}

// GreaterThan reports whether c is further along the traversal than other.
//
// Cursors on the same side compare their indices directly (reversed on the
// high side, where the fold walks downward). A cursor on the low side at index
// i has passed a high-side cursor at index j once i >= n-j; a high-side cursor
// at index i has passed a low-side cursor at index j while n-i > j.
//
// Ordering an exhausted cursor, or cursors over different stores, fails with
// ErrInvalidComparison.
func (c *CrossCursor) GreaterThan(other *CrossCursor) (bool, error) {
	if err := c.checkOrderable(other); err != nil {
		return false, err
	}

	switch {
	case c.side == low && other.side == low:
		return c.i > other.i, nil
	case c.side == high && other.side == high:
		return c.i < other.i, nil
	case c.side == low:
		return c.i >= c.n-other.i, nil
	default:
		return c.n-c.i > other.i, nil
	}
}

// LessThan reports whether c is earlier in the traversal than other.
// It fails under the same conditions as GreaterThan.
func (c *CrossCursor) LessThan(other *CrossCursor) (bool, error) {
	return other.GreaterThan(c)
}

func (c *CrossCursor) checkOrderable(other *CrossCursor) error {
	if c.store != other.store || c.n != other.n {
		return errInvalidComparison(kindCross, "bound to a different container")
	}

	if c.Done() || other.Done() {
		return errInvalidComparison(kindCross, "compared at end of sequence")
	}

	return nil
}

// All returns an iterator over a fresh side-cross traversal of the captured
// length. It does not move c.
func (c *CrossCursor) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := c.Begin(); !cur.Done(); cur.fold() {
			v, ok := cur.Peek().Get()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}
