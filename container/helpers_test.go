package container

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

// newStore builds a store seeded with values, logging to the test output.
func newStore(t *testing.T, values ...int) *Store {
	t.Helper()

	return New(WithLogger(slogt.New(t)), WithElements(values...))
}

// cursor is the forward-traversal surface shared by every cursor kind.
type cursor interface {
	Done() bool
	Value() (int, error)
	Next() error
}

// drain reads c until it is exhausted, failing the test on any error.
func drain(t *testing.T, c cursor) []int {
	t.Helper()

	var out []int

	for !c.Done() {
		v, err := c.Value()
		require.NoError(t, err)

		out = append(out, v)

		require.NoError(t, c.Next())
	}

	return out
}
