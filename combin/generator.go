package combin

import "fmt"

// Generator enumerates the strictly increasing k-tuples of indexes
// into a sequence of length n, in lexicographic order.
//
// The zero value is a generator for the single empty tuple
// of an empty sequence.
type Generator struct {
	// idx holds the current tuple in idx[:k].
	// Invariant: unless done, 0 <= idx[0] < ... < idx[k-1] < n.
	idx  [MaxArity]int
	n, k int
	done bool
}

// NewGenerator returns a generator for the k-element index
// tuples drawn from [0, n). If k > n, the generator is
// already done. It panics if n or k is negative or k is greater
// than MaxArity.
func NewGenerator(n, k int) *Generator {
	g := new(Generator)
	g.Reset(n, k)
	return g
}

// Reset resets the generator to the first k-tuple drawn from [0, n),
// as if it had been newly created by NewGenerator(n, k).
func (g *Generator) Reset(n, k int) {
	if n < 0 {
		panic(fmt.Errorf("combin: negative sequence length %d", n))
	}
	if k < 0 || k > MaxArity {
		panic(fmt.Errorf("combin: combination size %d out of range [0, %d]", k, MaxArity))
	}
	g.n, g.k = n, k
	g.done = k > n
	for i := range k {
		g.idx[i] = i
	}
}

// Len returns the size of each tuple.
func (g *Generator) Len() int {
	return g.k
}

// N returns the length of the sequence being indexed.
func (g *Generator) N() int {
	return g.n
}

// Done reports whether all the tuples have been produced.
func (g *Generator) Done() bool {
	return g.done
}

// Indices returns the current tuple. The returned slice refers
// to the generator's own state, so it is only valid until the next
// call to Next or Reset. It returns nil when g is done.
func (g *Generator) Indices() []int {
	if g.done {
		return nil
	}
	return g.idx[:g.k:g.k]
}

// Next moves to the tuple that follows the current one in
// lexicographic order, or marks the generator as done if there
// are no more. Calling Next on a done generator does nothing.
func (g *Generator) Next() {
	if g.done {
		return
	}
	// Find the rightmost index that has room to grow.
	// Position i can hold at most n-k+i.
	i := g.k - 1
	for i >= 0 && g.idx[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return
	}
	g.idx[i]++
	for j := i + 1; j < g.k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}
}
