package container

import (
	"slices"
	"testing"

	"github.com/amp-labs/magiccontainer/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty store", func(t *testing.T) {
		t.Parallel()

		s := New()
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Size())
		assert.Empty(t, s.Elements())
		assert.Equal(t, "[]", s.String())
	})

	t.Run("seeds and sorts initial elements", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 3, 1, 2)
		assert.Equal(t, []int{1, 2, 3}, s.Elements())
	})
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	t.Run("stays sorted after every add", func(t *testing.T) {
		t.Parallel()

		s := newStore(t)

		for _, v := range []int{5, -2, 8, 1, 9, 3, 3, 0, -7, 4} {
			s.Add(v)
			assert.True(t, slices.IsSorted(s.Elements()), "after adding %d: %v", v, s)
		}

		assert.Equal(t, 10, s.Size())
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		s := newStore(t)
		s.Add(4)
		s.Add(4)
		s.Add(4)

		assert.Equal(t, []int{4, 4, 4}, s.Elements())
	})

	t.Run("add all sorts once", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 10)
		s.AddAll(7, 3, 1, 9)
		s.AddAll()

		assert.Equal(t, []int{1, 3, 7, 9, 10}, s.Elements())
	})
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes a single occurrence", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1, 2, 2, 3)

		require.NoError(t, s.Remove(2))
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, []int{1, 2, 3}, s.Elements())
	})

	t.Run("missing value fails and leaves store unchanged", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1, 2, 3)

		err := s.Remove(42)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []int{1, 2, 3}, s.Elements())
	})

	t.Run("error carries log attributes", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1)

		attrs := logger.ErrorAttrs(s.Remove(5))
		require.Len(t, attrs, 2)
		assert.Equal(t, "value", attrs[0].Key)
		assert.Equal(t, int64(5), attrs[0].Value.Int64())
		assert.Equal(t, "size", attrs[1].Key)
	})

	t.Run("removing from empty store fails", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, newStore(t).Remove(0), ErrNotFound)
	})
}

func TestStore_RemoveAll(t *testing.T) {
	t.Parallel()

	t.Run("removes every present value", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1, 2, 3, 4, 5)

		require.NoError(t, s.RemoveAll(2, 4))
		assert.Equal(t, []int{1, 3, 5}, s.Elements())
	})

	t.Run("reports missing values but removes the rest", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1, 2, 3)

		err := s.RemoveAll(7, 2, 8)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "7")
		assert.Contains(t, err.Error(), "8")
		assert.Equal(t, []int{1, 3}, s.Elements())
	})
}

func TestStore_Queries(t *testing.T) {
	t.Parallel()

	t.Run("contains", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, -3, 0, 7)

		assert.True(t, s.Contains(-3))
		assert.True(t, s.Contains(7))
		assert.False(t, s.Contains(1))
	})

	t.Run("min and max", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 4, -1, 9)

		assert.Equal(t, -1, s.Min().GetOrPanic())
		assert.Equal(t, 9, s.Max().GetOrPanic())

		empty := newStore(t)
		assert.True(t, empty.Min().Empty())
		assert.True(t, empty.Max().Empty())
	})

	t.Run("elements is a copy", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 1, 2, 3)

		elems := s.Elements()
		elems[0] = 100

		assert.Equal(t, []int{1, 2, 3}, s.Elements())
	})

	t.Run("seq yields ascending and stops early", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, 3, 1, 2)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Seq()))

		var first []int

		for v := range s.Seq() {
			first = append(first, v)

			break
		}

		assert.Equal(t, []int{1}, first)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "[1 2 3]", newStore(t, 2, 3, 1).String())
	})
}
