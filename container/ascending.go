package container

import (
	"iter"

	"github.com/amp-labs/magiccontainer/assert"
	"github.com/amp-labs/magiccontainer/optional"
	"github.com/amp-labs/magiccontainer/sortable"
	"github.com/amp-labs/magiccontainer/zero"
)

// AscendingCursor walks a store's elements in ascending order.
//
// The cursor holds a position in [0, Size()]; position Size() is the exhausted
// state. Reads go through to the store's live slice.
type AscendingCursor struct {
	store *Store
	pos   int
}

// Compile-time check that AscendingCursor can be ordered by position.
var _ sortable.Sortable[*AscendingCursor] = (*AscendingCursor)(nil)

// NewAscendingCursor returns a cursor positioned at the smallest element of store.
func NewAscendingCursor(store *Store) *AscendingCursor {
	assert.True(store != nil, "container: ascending cursor requires a store")

	return &AscendingCursor{store: store}
}

// Begin returns a new cursor over the same store, positioned at the first element.
func (c *AscendingCursor) Begin() *AscendingCursor {
	return &AscendingCursor{store: c.store}
}

// End returns a new cursor over the same store, in the exhausted state.
func (c *AscendingCursor) End() *AscendingCursor {
	return &AscendingCursor{store: c.store, pos: c.store.Size()}
}

// Position returns the index the cursor points at.
func (c *AscendingCursor) Position() int {
	return c.pos
}

// Done reports whether the cursor is exhausted.
func (c *AscendingCursor) Done() bool {
	return c.pos >= c.store.Size()
}

// Peek returns the current element, or None if the cursor is exhausted.
func (c *AscendingCursor) Peek() optional.Value[int] {
	v, ok := c.store.at(c.pos)
	if !ok {
		return optional.None[int]()
	}

	return optional.Some(v)
}

// Value returns the current element. It fails with ErrOutOfRange when the
// cursor is exhausted.
func (c *AscendingCursor) Value() (int, error) {
	v, ok := c.Peek().Get()
	if !ok {
		return zero.Value[int](), errOutOfRange(kindAscending, c.pos, c.store.Size())
	}

	return v, nil
}

// Next moves the cursor one element forward. Advancing an exhausted cursor
// is a usage error and fails with ErrEndOfSequence.
func (c *AscendingCursor) Next() error {
	if c.Done() {
		return errEndOfSequence(kindAscending, c.pos, c.store.Size())
	}

	c.pos++

	return nil
}

// Assign moves c to the position of other. Both cursors must be bound to the
// same store, otherwise ErrCrossContainer is returned and c is unchanged.
func (c *AscendingCursor) Assign(other *AscendingCursor) error {
	if c.store != other.store {
		return errCrossContainer(kindAscending)
	}

	c.pos = other.pos

	return nil
}

// Equals reports whether both cursors are at the same position. Cursors over
// different stores may be compared; only their positions are considered.
func (c *AscendingCursor) Equals(other *AscendingCursor) bool {
	return c.pos == other.pos
}

// AtPosition reports whether the cursor points at the raw index pos.
func (c *AscendingCursor) AtPosition(pos int) bool {
	return c.pos == pos
}

// LessThan reports whether c is positioned before other.
func (c *AscendingCursor) LessThan(other *AscendingCursor) bool {
	return c.pos < other.pos
}

// LessOrEqual reports whether c is positioned at or before other.
func (c *AscendingCursor) LessOrEqual(other *AscendingCursor) bool {
	return c.pos <= other.pos
}

// GreaterThan reports whether c is positioned after other.
func (c *AscendingCursor) GreaterThan(other *AscendingCursor) bool {
	return c.pos > other.pos
}

// GreaterOrEqual reports whether c is positioned at or after other.
func (c *AscendingCursor) GreaterOrEqual(other *AscendingCursor) bool {
	return c.pos >= other.pos
}

// All returns an iterator over a fresh ascending traversal of the store.
// It does not move c.
func (c *AscendingCursor) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := c.Begin(); !cur.Done(); cur.pos++ {
			v, _ := cur.Peek().Get()

			if !yield(v) {
				return
			}
		}
	}
}
