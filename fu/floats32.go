package fu

/*
Mean of a pooling window, 0 for an empty window.
Accumulates in float64 so long windows don't lose precision
*/
func Mean(a []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	var c float64
	for _, x := range a {
		c += float64(x)
	}
	return float32(c / float64(len(a)))
}

/*
Maxf is the largest value of a pooling window, 0 for an empty window
*/
func Maxf(a []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	r := a[0]
	for _, x := range a[1:] {
		if x > r {
			r = x
		}
	}
	return r
}

/*
Rowsf lays out rows of pixels one after another as a row-major image buffer
*/
func Rowsf(rows [][]float32) []float32 {
	n := 0
	for _, x := range rows {
		n += len(x)
	}
	r := make([]float32, 0, n)
	for _, x := range rows {
		r = append(r, x...)
	}
	return r
}
