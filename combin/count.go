package combin

import "math/bits"

// Count returns the number of k-combinations of n elements,
// n! / (k! * (n-k)!). It returns zero if k > n or either
// argument is negative. The boolean result is false if the
// count does not fit in a uint64.
func Count(n, k int) (uint64, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)
	c := uint64(1)
	for i := 1; i <= k; i++ {
		// After this step c == C(n-k+i, i), and the
		// division is exact.
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		c, _ = bits.Div64(hi, lo, uint64(i))
	}
	return c, true
}
