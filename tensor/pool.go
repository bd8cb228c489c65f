package tensor

import (
	"go-ml.dev/pkg/learntools/fu"
	"go-ml.dev/pkg/zorros"
)

type PoolingType int

const (
	Max PoolingType = iota
	Avg
)

type Padding int

const (
	Valid Padding = iota
	Same
)

/*
PoolOptions configures the 2D pooling of NHWC tensors.
Window and Strides have one value for both spatial dimensions or two values (height, width).
Zero strides mean stride 1
*/
type PoolOptions struct {
	Window  []int
	Strides []int
	Type    PoolingType
	Padding Padding
}

func pair(a []int, dflt int) (int, int, error) {
	switch len(a) {
	case 0:
		return dflt, dflt, nil
	case 1:
		return fu.Fnzi(a[0], dflt), fu.Fnzi(a[0], dflt), nil
	case 2:
		return fu.Fnzi(a[0], dflt), fu.Fnzi(a[1], dflt), nil
	}
	return 0, 0, zorros.Errorf("expected 1 or 2 spatial values, but got %v", a)
}

// output size and padding before the first element along one dimension
func outdim(in, window, stride int, padding Padding) (int, int) {
	if padding == Same {
		out := (in + stride - 1) / stride
		pad := fu.Maxi((out-1)*stride+window-in, 0)
		return out, pad / 2
	}
	return fu.Maxi(in-window+stride, 0) / stride, 0
}

/*
Pool applies max or average pooling over the spatial dimensions of a [batch,height,width,channels] tensor.
Padded positions never contribute to the result
*/
func Pool(t Tensor, opts PoolOptions) (Tensor, error) {
	if t.Rank() != 4 {
		return Tensor{}, zorros.Errorf("pooling expects [batch,height,width,channels] tensor, but got shape %v", t.shape)
	}
	wh, ww, err := pair(opts.Window, 1)
	if err != nil {
		return Tensor{}, err
	}
	sh, sw, err := pair(opts.Strides, 1)
	if err != nil {
		return Tensor{}, err
	}
	if wh < 1 || ww < 1 || sh < 1 || sw < 1 {
		return Tensor{}, zorros.Errorf("window and strides must be positive")
	}
	b, h, w, c := t.shape[0], t.shape[1], t.shape[2], t.shape[3]
	oh, ph := outdim(h, wh, sh, opts.Padding)
	ow, pw := outdim(w, ww, sw, opts.Padding)
	r := Zeros(b, oh, ow, c)
	window := make([]float32, 0, wh*ww)
	for n := 0; n < b; n++ {
		for y := 0; y < oh; y++ {
			for x := 0; x < ow; x++ {
				for k := 0; k < c; k++ {
					window = window[:0]
					for i := y*sh - ph; i < y*sh-ph+wh; i++ {
						for j := x*sw - pw; j < x*sw-pw+ww; j++ {
							if i >= 0 && i < h && j >= 0 && j < w {
								window = append(window, t.data[((n*h+i)*w+j)*c+k])
							}
						}
					}
					v := float32(0)
					if len(window) > 0 {
						if opts.Type == Avg {
							v = fu.Mean(window)
						} else {
							v = fu.Maxf(window)
						}
					}
					r.data[((n*oh+y)*ow+x)*c+k] = v
				}
			}
		}
	}
	return r, nil
}
