/*
Package tensor implements a small dense float32 tensor with the pooling operations
the computer vision lessons check against
*/
package tensor

import (
	"fmt"
	"go-ml.dev/pkg/learntools/fu"
	"go-ml.dev/pkg/zorros"
)

/*
Tensor is a dense row-major float32 tensor
*/
type Tensor struct {
	shape []int
	data  []float32
}

func volume(shape []int) int {
	n := 1
	for _, x := range shape {
		n *= x
	}
	return n
}

/*
New creates a tensor of the shape over data, data length must match the shape volume
*/
func New(data []float32, shape ...int) (Tensor, error) {
	for _, x := range shape {
		if x < 0 {
			return Tensor{}, zorros.Errorf("negative dimension in shape %v", shape)
		}
	}
	if volume(shape) != len(data) {
		return Tensor{}, zorros.Errorf("shape %v requires %d values, but got %d", shape, volume(shape), len(data))
	}
	return Tensor{shape: append([]int(nil), shape...), data: data}, nil
}

/*
Image creates a [1,height,width,1] tensor from rows of pixels
*/
func Image(rows [][]float32) (Tensor, error) {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	for _, r := range rows {
		if len(r) != w {
			return Tensor{}, zorros.Errorf("image rows have different widths")
		}
	}
	return New(fu.Rowsf(rows), 1, len(rows), w, 1)
}

/*
Zeros creates a zero-filled tensor
*/
func Zeros(shape ...int) Tensor {
	t, err := New(make([]float32, volume(shape)), shape...)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return t
}

/*
Shape returns a copy of the tensor dimensions
*/
func (t Tensor) Shape() []int {
	return append([]int{}, t.shape...)
}

func (t Tensor) Rank() int {
	return len(t.shape)
}

/*
Data returns the underlying values in row-major order
*/
func (t Tensor) Data() []float32 {
	return t.data
}

/*
Squeeze removes all dimensions of size 1
*/
func (t Tensor) Squeeze() Tensor {
	shape := []int{}
	for _, x := range t.shape {
		if x != 1 {
			shape = append(shape, x)
		}
	}
	return Tensor{shape: shape, data: t.data}
}

func (t Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v)", t.shape)
}
