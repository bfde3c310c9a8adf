package permute_test

import (
	"fmt"

	"github.com/constcomb/generic/permute"
)

func ExampleAll() {
	for p := range permute.All[[2]string]([]string{"x", "y", "z"}) {
		fmt.Println(p)
	}
	// Output:
	// [x y]
	// [y x]
	// [x z]
	// [z x]
	// [y z]
	// [z y]
}
