// Package combin provides iterators over the k-combinations of
// the elements of a slice, where k is fixed at compile time by
// the length of the array type that holds each combination.
//
// For example, this prints the pairs that can be chosen from a
// slice of four values:
//
//	for c := range combin.All[[2]int]([]int{1, 2, 3, 4}) {
//		fmt.Println(c)
//	}
//
// Combinations are produced in lexicographic order of the
// positions of their elements in the source. Element values
// are never compared, so equal elements at different positions
// produce equal-valued combinations.
package combin

// MaxArity holds the largest combination size that
// can be expressed with [Array].
const MaxArity = 16

// Array is the constraint satisfied by arrays of T with
// between zero and MaxArity elements. The array length
// determines the size of each combination.
type Array[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T |
		~[6]T | ~[7]T | ~[8]T | ~[9]T | ~[10]T | ~[11]T |
		~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// arity returns the length of the array type A.
func arity[A Array[T], T any]() int {
	var a A
	return len(a)
}
