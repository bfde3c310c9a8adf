package combin

import "iter"

// RefCombinations iterates over combinations of pointers
// to the elements of a slice.
//
// A RefCombinations value is not safe for concurrent use.
// The zero value iterates over an empty source.
type RefCombinations[A Array[*T], T any] struct {
	src []T
	gen Generator
}

// Refs is like Of except that each combination holds pointers
// to the chosen elements of src rather than copies of them,
// which avoids copying large elements.
func Refs[A Array[*T], T any](src []T) *RefCombinations[A, T] {
	c := &RefCombinations[A, T]{
		src: src,
	}
	c.gen.Reset(len(src), arity[A, *T]())
	return c
}

// Next returns the next combination and true, or the zero A
// and false if there are no more.
func (c *RefCombinations[A, T]) Next() (A, bool) {
	var a A
	if c.gen.Len() != len(a) {
		c.gen.Reset(len(c.src), len(a))
	}
	if c.gen.Done() {
		return a, false
	}
	for i, x := range c.gen.Indices() {
		a[i] = &c.src[x]
	}
	c.gen.Next()
	return a, true
}

// All returns a sequence of the remaining combinations.
func (c *RefCombinations[A, T]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := c.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}
