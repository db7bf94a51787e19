// Package primes provides the primality test used by prime-filtered cursors,
// along with a range-over-func filter for integer sequences.
package primes

import (
	"iter"
	"math"
)

// IsPrime reports whether n is a prime number. Values below 2 (including all
// negative numbers) are never prime. The check uses trial division by every
// candidate up to the integer square root of n.
//
// Example:
//
//	primes.IsPrime(7)  // true
//	primes.IsPrime(9)  // false
//	primes.IsPrime(-7) // false
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	limit := isqrt(n)

	for d := 2; d <= limit; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0. The float estimate is corrected in
// both directions since float64 cannot represent every large int exactly.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))

	for r > 0 && r > n/r {
		r--
	}

	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// Filter returns a sequence which yields only the prime values of seq,
// preserving their order. It stops as soon as the consumer stops.
//
// Example:
//
//	for p := range primes.Filter(slices.Values([]int{1, 2, 3, 4, 5})) {
//	    fmt.Println(p) // 2, 3, 5
//	}
func Filter(seq iter.Seq[int]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range seq {
			if !IsPrime(v) {
				continue
			}

			if !yield(v) {
				return
			}
		}
	}
}
