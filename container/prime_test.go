package container

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeCursor_Traversal(t *testing.T) {
	t.Parallel()

	t.Run("yields only primes in ascending order", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 7, 6, 5, 4, 3, 2, 1))

		assert.Equal(t, []int{2, 3, 5, 7}, drain(t, c))
		assert.True(t, c.Done())
	})

	t.Run("no primes starts exhausted", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 4, 6, 8, 9))

		assert.True(t, c.Done())
		assert.Equal(t, 4, c.Position())
		assert.True(t, c.Equals(c.End()))
	})

	t.Run("negatives zero and one are skipped", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, -7, -2, 0, 1, 2, 11))

		assert.Equal(t, []int{2, 11}, drain(t, c))
	})

	t.Run("duplicate primes are each visited", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 3, 3, 4, 5, 5))

		assert.Equal(t, []int{3, 3, 5, 5}, drain(t, c))
	})

	t.Run("begin restarts at the first prime", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 1, 4, 13, 17))
		require.NoError(t, c.Next())

		begin := c.Begin()
		assert.Equal(t, 2, begin.Position())
		assert.Equal(t, 13, begin.Peek().GetOrPanic())
	})

	t.Run("all does not move the cursor", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 2, 3, 4, 5))
		require.NoError(t, c.Next())

		assert.Equal(t, []int{2, 3, 5}, slices.Collect(c.All()))
		assert.Equal(t, 1, c.Position())
	})
}

func TestPrimeCursor_Errors(t *testing.T) {
	t.Parallel()

	t.Run("advancing past the end fails", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 2, 4))
		require.NoError(t, c.Next())
		assert.True(t, c.Done())

		require.ErrorIs(t, c.Next(), ErrEndOfSequence)
	})

	t.Run("reading at the end fails", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 2, 3)).End()

		_, err := c.Value()
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("assigning across stores fails", func(t *testing.T) {
		t.Parallel()

		a := NewPrimeCursor(newStore(t, 2, 3))
		b := NewPrimeCursor(newStore(t, 2, 3))

		require.ErrorIs(t, b.Assign(a), ErrCrossContainer)
	})

	t.Run("assigning within a store copies the index", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 2, 3, 5)
		a := NewPrimeCursor(s)
		b := NewPrimeCursor(s)
		require.NoError(t, a.Next())

		require.NoError(t, b.Assign(a))
		assert.True(t, b.AtPosition(1))
	})

	t.Run("nil store panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { NewPrimeCursor(nil) })
	})
}

func TestPrimeCursor_Comparison(t *testing.T) {
	t.Parallel()

	t.Run("equality compares values not indices", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 3, 3, 5)
		first := NewPrimeCursor(s)
		second := first.Begin()
		require.NoError(t, second.Next())

		assert.Equal(t, 0, first.Position())
		assert.Equal(t, 1, second.Position())
		assert.True(t, first.Equals(second))
		assert.True(t, first.LessThan(second))
	})

	t.Run("exhausted cursors are equal across stores", func(t *testing.T) {
		t.Parallel()

		a := NewPrimeCursor(newStore(t, 4, 6))
		b := NewPrimeCursor(newStore(t, 2, 3, 5)).End()

		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
	})

	t.Run("exactly one exhausted is unequal", func(t *testing.T) {
		t.Parallel()

		c := NewPrimeCursor(newStore(t, 2))

		assert.False(t, c.Equals(c.End()))
		assert.False(t, c.End().Equals(c))
	})

	t.Run("equal values across stores", func(t *testing.T) {
		t.Parallel()

		a := NewPrimeCursor(newStore(t, 7))
		b := NewPrimeCursor(newStore(t, 1, 4, 7))

		assert.True(t, a.Equals(b))
	})

	t.Run("orders by index", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 2, 3, 5)
		a := NewPrimeCursor(s)
		b := a.End()

		assert.True(t, a.LessThan(b))
		assert.True(t, a.LessOrEqual(b))
		assert.True(t, b.GreaterThan(a))
		assert.True(t, b.GreaterOrEqual(a))
		assert.True(t, a.LessOrEqual(a))
		assert.True(t, b.AtPosition(3))
	})
}
