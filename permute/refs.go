package permute

import (
	"iter"

	"github.com/constcomb/generic/combin"
)

// RefPermutations iterates over permutations of pointers
// to the elements of a slice.
//
// A RefPermutations value is not safe for concurrent use.
// The zero value iterates over an empty source.
type RefPermutations[A combin.Array[*T], T any] struct {
	src []T
	st  state
}

// Refs is like Of except that each permutation holds pointers
// to the chosen elements of src rather than copies of them.
func Refs[A combin.Array[*T], T any](src []T) *RefPermutations[A, T] {
	var a A
	p := &RefPermutations[A, T]{
		src: src,
	}
	p.st.reset(len(src), len(a))
	return p
}

// Next returns the next permutation and true, or the zero A
// and false when there are no more.
func (p *RefPermutations[A, T]) Next() (A, bool) {
	var a A
	p.st.ensure(len(p.src), len(a))
	if p.st.done() {
		return a, false
	}
	chosen := p.st.comb.Indices()
	for i, j := range p.st.perm.Indices() {
		a[i] = &p.src[chosen[j]]
	}
	p.st.next()
	return a, true
}

// All returns a sequence of the remaining permutations.
func (p *RefPermutations[A, T]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := p.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}
