// Package permute provides iterators over the k-permutations of the
// elements of a slice: every ordering of every k-combination, with
// k fixed by the length of the array type that holds each result.
package permute

import (
	"fmt"
	"iter"
	"slices"

	"github.com/constcomb/generic/combin"
)

// Generator enumerates all orderings of the indexes [0, k)
// using the iterative form of Heap's algorithm, so each
// ordering differs from the previous one by a single swap.
type Generator struct {
	idx   [combin.MaxArity]int
	count [combin.MaxArity]int
	k     int
	done  bool
}

// NewGenerator returns a generator for the orderings of k
// indexes. It panics if k is negative or greater than
// combin.MaxArity.
func NewGenerator(k int) *Generator {
	g := new(Generator)
	g.Reset(k)
	return g
}

// Reset sets g back to the identity ordering of k indexes.
func (g *Generator) Reset(k int) {
	if k < 0 || k > combin.MaxArity {
		panic(fmt.Errorf("permute: permutation size %d out of range [0, %d]", k, combin.MaxArity))
	}
	g.k = k
	g.done = false
	for i := range k {
		g.idx[i] = i
		g.count[i] = 0
	}
}

// Done reports whether all the orderings have been produced.
func (g *Generator) Done() bool {
	return g.done
}

// Indices returns the current ordering. It is only valid
// until the next call to Next or Reset.
func (g *Generator) Indices() []int {
	if g.done {
		return nil
	}
	return g.idx[:g.k:g.k]
}

// Next moves on to the next ordering.
func (g *Generator) Next() {
	if g.done {
		return
	}
	i := 1
	for i < g.k && g.count[i] >= i {
		g.count[i] = 0
		i++
	}
	if i >= g.k {
		g.done = true
		return
	}
	if i%2 == 0 {
		g.idx[0], g.idx[i] = g.idx[i], g.idx[0]
	} else {
		j := g.count[i]
		g.idx[j], g.idx[i] = g.idx[i], g.idx[j]
	}
	g.count[i]++
}

// state steps through every ordering of every k-combination
// of n positions.
type state struct {
	comb combin.Generator
	perm Generator
}

func (s *state) reset(n, k int) {
	s.comb.Reset(n, k)
	s.perm.Reset(k)
}

// ensure resets s when its size does not match k, which
// is only the case for the zero value.
func (s *state) ensure(n, k int) {
	if s.comb.Len() != k {
		s.reset(n, k)
	}
}

// done reports whether all the permutations have been produced.
func (s *state) done() bool {
	return s.comb.Done()
}

// next moves on to the next permutation, starting on the
// next combination when all its orderings have been seen.
func (s *state) next() {
	s.perm.Next()
	if s.perm.Done() {
		s.perm.Reset(s.comb.Len())
		s.comb.Next()
	}
}

// Permutations iterates over the k-permutations of the
// elements of a slice.
//
// The combinations are visited in the same order as
// combin.Of produces them, and all the orderings of
// each combination are produced before moving on to the next.
//
// A Permutations value is not safe for concurrent use.
// The zero value iterates over an empty source.
type Permutations[A combin.Array[T], T any] struct {
	src []T
	st  state

	// seq holds the source until it is read. See FromSeq.
	seq iter.Seq[T]
}

// Of returns an iterator over the permutations of the elements of src,
// each of length len(A). As with combin.Of, src is read during
// iteration and must not be changed until it is finished.
func Of[A combin.Array[T], T any](src []T) *Permutations[A, T] {
	var a A
	p := &Permutations[A, T]{
		src: src,
	}
	p.st.reset(len(src), len(a))
	return p
}

// FromSeq returns an iterator over the permutations of the values
// produced by seq. All of seq is read by the first call to Next
// and nothing before that.
func FromSeq[A combin.Array[T], T any](seq iter.Seq[T]) *Permutations[A, T] {
	var a A
	p := &Permutations[A, T]{
		seq: seq,
	}
	p.st.reset(0, len(a))
	return p
}

// All returns a sequence of all the permutations of src.
func All[A combin.Array[T], T any](src []T) iter.Seq[A] {
	return func(yield func(A) bool) {
		Of[A](src).All()(yield)
	}
}

// Next returns the next permutation and true, or the zero A
// and false when there are no more.
func (p *Permutations[A, T]) Next() (A, bool) {
	var a A
	if p.seq != nil {
		p.src = slices.Collect(p.seq)
		p.seq = nil
		p.st.reset(len(p.src), len(a))
	}
	p.st.ensure(len(p.src), len(a))
	if p.st.done() {
		return a, false
	}
	chosen := p.st.comb.Indices()
	for i, j := range p.st.perm.Indices() {
		a[i] = p.src[chosen[j]]
	}
	p.st.next()
	return a, true
}

// All returns a sequence of the remaining permutations.
func (p *Permutations[A, T]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := p.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}
