package combin

import (
	"iter"
	"slices"
)

// Combinations iterates over the combinations of the elements
// of a slice. Each combination is an array of type A holding
// copies of the chosen elements in source order.
//
// A Combinations value is not safe for concurrent use. Once it
// is exhausted it stays that way; create a new one to start
// again. The zero value iterates over an empty source.
type Combinations[A Array[T], T any] struct {
	src []T
	gen Generator

	// seq holds the source when it has not yet been read.
	// See FromSeq.
	seq iter.Seq[T]
}

// Of returns an iterator over the combinations of the elements of src.
// The size of each combination is the length of A, so
//
//	combin.Of[[3]string](names)
//
// iterates over all the ways of choosing three names.
//
// The iterator reads from src as it goes, so src must not be modified
// until the iteration is finished. Use Owned if that can't be guaranteed.
//
// If len(src) is less than the length of A, there are no combinations.
func Of[A Array[T], T any](src []T) *Combinations[A, T] {
	c := &Combinations[A, T]{
		src: src,
	}
	c.gen.Reset(len(src), arity[A, T]())
	return c
}

// Owned is like Of except that it works on its own copy of src,
// so the caller is free to modify src afterwards.
func Owned[A Array[T], T any](src []T) *Combinations[A, T] {
	return Of[A](slices.Clone(src))
}

// FromSeq returns an iterator over the combinations of the values
// produced by seq. Nothing is read from seq until the first call to Next,
// at which point all of its values are read, so seq must be finite.
func FromSeq[A Array[T], T any](seq iter.Seq[T]) *Combinations[A, T] {
	c := &Combinations[A, T]{
		seq: seq,
	}
	c.gen.Reset(0, arity[A, T]())
	return c
}

// All returns an iterator over all the combinations of
// the elements of src. Each range over the returned
// sequence starts from the first combination.
func All[A Array[T], T any](src []T) iter.Seq[A] {
	return func(yield func(A) bool) {
		Of[A](src).All()(yield)
	}
}

// Next returns the next combination and true, or the zero A
// and false if there are no more.
func (c *Combinations[A, T]) Next() (A, bool) {
	if c.seq != nil {
		c.src = slices.Collect(c.seq)
		c.seq = nil
		c.gen.Reset(len(c.src), c.gen.Len())
	}
	var a A
	if c.gen.Len() != len(a) {
		// Zero value.
		c.gen.Reset(len(c.src), len(a))
	}
	if c.gen.Done() {
		return a, false
	}
	for i, x := range c.gen.Indices() {
		a[i] = c.src[x]
	}
	c.gen.Next()
	return a, true
}

// All returns a sequence of the remaining combinations.
// Breaking out of a range over the sequence leaves
// the rest of the combinations for later calls.
func (c *Combinations[A, T]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := c.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}
