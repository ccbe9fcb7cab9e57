package tensor_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tensorfield/tensor"
)

// ExampleR1 shows 1-based component access and the out-of-range error.
func ExampleR1() {
	u := tensor.NewR1(1, 2, 3)
	x2, _ := u.At(2)
	fmt.Println(x2)

	_, err := u.At(4)
	fmt.Println(errors.Is(err, tensor.ErrIndex))
	fmt.Println(u)

	// Output:
	// 2
	// true
	// ( 1, 2, 3 )
}

// ExampleSkew shows that Skew(u)·v equals u×v.
func ExampleSkew() {
	u := tensor.NewR1(0, 0, 1)
	v := tensor.NewR1(1, 0, 0)

	fmt.Println(tensor.MulVec(tensor.Skew(u), v))
	fmt.Println(tensor.Cross(u, v))

	// Output:
	// ( 0, 1, 0 )
	// ( 0, 1, 0 )
}
