package tensor

import (
	"gotest.tools/assert"
	"testing"
)

func Test_New(t *testing.T) {
	x, err := New([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.NilError(t, err)
	assert.DeepEqual(t, x.Shape(), []int{2, 3})
	_, err = New([]float32{1, 2}, 2, 3)
	assert.ErrorContains(t, err, "requires 6 values")
	_, err = New(nil, -1)
	assert.ErrorContains(t, err, "negative")
	_, err = Image([][]float32{{1, 2}, {3}})
	assert.ErrorContains(t, err, "widths")
}

func Test_Squeeze(t *testing.T) {
	assert.DeepEqual(t, Zeros(1, 99, 99, 1).Squeeze().Shape(), []int{99, 99})
	assert.DeepEqual(t, Zeros(1, 1).Squeeze().Shape(), []int{})
	assert.Equal(t, Zeros(1, 5, 1).Squeeze().String(), "Tensor(shape=[5])")
}

func Test_PoolShapes(t *testing.T) {
	for _, c := range []struct {
		in      int
		padding Padding
		out     int
	}{{198, Same, 99}, {199, Same, 100}, {199, Valid, 99}, {198, Valid, 99}, {1, Valid, 0}} {
		r, err := Pool(Zeros(1, c.in, c.in, 1), PoolOptions{Window: []int{2}, Strides: []int{2}, Type: Max, Padding: c.padding})
		assert.NilError(t, err)
		assert.DeepEqual(t, r.Shape(), []int{1, c.out, c.out, 1})
	}
}

func Test_MaxPool(t *testing.T) {
	img, err := Image([][]float32{
		{1, 5, 0},
		{2, 3, 7},
		{9, 0, 4},
	})
	assert.NilError(t, err)
	r, err := Pool(img, PoolOptions{Window: []int{2, 2}, Strides: []int{2, 2}, Padding: Same})
	assert.NilError(t, err)
	assert.DeepEqual(t, r.Shape(), []int{1, 2, 2, 1})
	assert.DeepEqual(t, r.Data(), []float32{5, 7, 9, 4})

	r, err = Pool(img, PoolOptions{Window: []int{2}, Strides: []int{2}, Padding: Valid})
	assert.NilError(t, err)
	assert.DeepEqual(t, r.Data(), []float32{5})
}

func Test_AvgPool(t *testing.T) {
	img, _ := Image([][]float32{
		{1, 3, 6},
		{5, 7, 2},
	})
	r, err := Pool(img, PoolOptions{Window: []int{2}, Strides: []int{2}, Type: Avg, Padding: Same})
	assert.NilError(t, err)
	assert.DeepEqual(t, r.Data(), []float32{4, 4})
}

func Test_PoolErrors(t *testing.T) {
	_, err := Pool(Zeros(4, 4), PoolOptions{})
	assert.ErrorContains(t, err, "batch")
	_, err = Pool(Zeros(1, 4, 4, 1), PoolOptions{Window: []int{2, 2, 2}})
	assert.ErrorContains(t, err, "spatial")
	_, err = Pool(Zeros(1, 4, 4, 1), PoolOptions{Window: []int{-2}})
	assert.ErrorContains(t, err, "positive")
}
