package container

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	amperrors "github.com/amp-labs/magiccontainer/errors"
	"github.com/amp-labs/magiccontainer/logger"
	"github.com/amp-labs/magiccontainer/optional"
)

// Store is a flat collection of ints kept in non-decreasing order.
// Duplicates are permitted. The zero value is not usable; call New.
type Store struct {
	elements []int
	log      *slog.Logger
}

// New creates a Store. With no options the store starts out empty.
//
// Example:
//
//	store := container.New(container.WithElements(3, 1, 2))
//	store.Elements() // [1 2 3]
func New(opts ...Option) *Store {
	s := &Store{}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	s.sort()

	return s
}

func (s *Store) sort() {
	slices.Sort(s.elements)
}

// at returns the element at index i of the live slice, if there is one.
func (s *Store) at(i int) (int, bool) {
	if i < 0 || i >= len(s.elements) {
		return 0, false
	}

	return s.elements[i], true
}

// Add inserts value and re-sorts the store.
// Cursors positioned at or past the insertion point will observe shifted elements.
func (s *Store) Add(value int) {
	s.elements = append(s.elements, value)
	s.sort()
}

// AddAll inserts every value and sorts once.
func (s *Store) AddAll(values ...int) {
	if len(values) == 0 {
		return
	}

	s.elements = append(s.elements, values...)
	s.sort()
}

// Remove deletes the first occurrence of value. Since removing an element
// from a sorted slice leaves it sorted, no re-sort happens. Returns an error
// wrapping ErrNotFound (and leaves the store untouched) if value is absent.
func (s *Store) Remove(value int) error {
	idx := slices.Index(s.elements, value)
	if idx < 0 {
		s.log.Debug("remove: element not found", "value", value, "size", len(s.elements))

		return errNotFound(value, len(s.elements))
	}

	s.elements = slices.Delete(s.elements, idx, idx+1)

	return nil
}

// RemoveAll removes one occurrence of each value, in order. Values that are
// not present are skipped and reported together: the returned error joins one
// ErrNotFound per missing value, so errors.Is(err, ErrNotFound) holds.
func (s *Store) RemoveAll(values ...int) error {
	var errs amperrors.Collection

	for _, value := range values {
		errs.Add(s.Remove(value))
	}

	return errs.GetError()
}

// Size returns the number of elements, counting duplicates.
func (s *Store) Size() int {
	return len(s.elements)
}

// Elements returns a copy of the sorted elements. Modifying the returned
// slice does not affect the store.
func (s *Store) Elements() []int {
	return slices.Clone(s.elements)
}

// Contains reports whether value is in the store.
func (s *Store) Contains(value int) bool {
	_, found := slices.BinarySearch(s.elements, value)

	return found
}

// Min returns the smallest element, or None if the store is empty.
func (s *Store) Min() optional.Value[int] {
	if len(s.elements) == 0 {
		return optional.None[int]()
	}

	return optional.Some(s.elements[0])
}

// Max returns the largest element, or None if the store is empty.
func (s *Store) Max() optional.Value[int] {
	if len(s.elements) == 0 {
		return optional.None[int]()
	}

	return optional.Some(s.elements[len(s.elements)-1])
}

// Seq returns an iterator over the elements in ascending order.
// Like the cursors, it reads the live slice and must not be interleaved with mutation.
func (s *Store) Seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(s.elements); i++ {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// String returns the elements formatted like a slice, e.g. "[1 2 3]".
func (s *Store) String() string {
	return fmt.Sprint(s.elements)
}
