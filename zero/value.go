// Package zero provides the zero value of a generic type.
package zero

// Value returns the zero value for type T. It reads better than a named
// var declaration when returning alongside an error:
//
//	return zero.Value[int](), err
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
