package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/conv"
)

func ExampleLFilter() {
	out, err := conv.LFilter([]int32{1, 2, 3}, []int32{1, 0, 0, 0, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// [1 2 3 0 2]
}

func ExampleDirect() {
	out, _ := conv.Direct([]int32{1, 1, 1, 1}, []int32{1, -1})
	fmt.Println(out)
	// Output:
	// [1 0 0 0]
}
