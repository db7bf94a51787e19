// Package container provides a sorted integer container with three cursor
// kinds that traverse the same underlying sequence in different orders.
//
// # Overview
//
// A [Store] owns a single slice of ints which is kept in non-decreasing order
// after every mutation. Duplicates are allowed and each occupies its own slot.
// Three cursors read that slice:
//
//   - [AscendingCursor] walks the elements in ascending order.
//   - [CrossCursor] alternates between the lowest and the highest elements not
//     yet visited, folding inward: 1, 5, 2, 4, 3 for the elements 1..5.
//   - [PrimeCursor] walks the elements in ascending order, skipping every value
//     that is not prime.
//
// Any number of cursors, of any kind, may be live at once.
//
// # Usage
//
//	store := container.New()
//	store.AddAll(7, 3, 1, 9, 2)
//
//	cursor := container.NewCrossCursor(store)
//	for !cursor.Done() {
//	    v, _ := cursor.Value()
//	    fmt.Println(v) // 1, 9, 2, 7, 3
//	    _ = cursor.Next()
//	}
//
// Every cursor also offers All, which ranges over a fresh traversal:
//
//	for v := range container.NewPrimeCursor(store).All() {
//	    fmt.Println(v) // 2, 3, 7
//	}
//
// # Borrowing
//
// Cursors do not copy the store. They hold a pointer to it and read its slice
// at the moment of each access, so reads always reflect the live contents.
// Mutating the store (Add, AddAll, Remove, RemoveAll) while cursors are live is
// not guarded against: positions held by existing cursors may silently refer to
// different elements afterwards. A position past the live end is reported as
// [ErrOutOfRange] on read rather than panicking. Callers that need stable
// traversal must finish (or discard) their cursors before mutating, or build
// cursors over a separate store seeded with [Store.Elements].
//
// # Thread Safety
//
// Neither the store nor the cursors are safe for concurrent use. All operations
// are synchronous and never block.
package container
