package combin_test

import (
	"fmt"

	"github.com/constcomb/generic/combin"
)

func ExampleOf() {
	c := combin.Of[[2]string]([]string{"a", "b", "c", "d"})
	for {
		pair, ok := c.Next()
		if !ok {
			break
		}
		fmt.Println(pair)
	}
	// Output:
	// [a b]
	// [a c]
	// [a d]
	// [b c]
	// [b d]
	// [c d]
}

func ExampleAll() {
	for c := range combin.All[[3]int]([]int{1, 2, 3, 4}) {
		fmt.Println(c[0] + c[1] + c[2])
	}
	// Output:
	// 6
	// 7
	// 8
	// 9
}

func ExampleRefs() {
	scores := []int{10, 20, 30}
	for pair := range combin.Refs[[2]*int](scores).All() {
		*pair[0]++
	}
	fmt.Println(scores)
	// Output:
	// [12 21 30]
}

func ExampleCount() {
	n, ok := combin.Count(52, 5)
	fmt.Println(n, ok)
	// Output:
	// 2598960 true
}
