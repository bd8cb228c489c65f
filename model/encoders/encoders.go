/*
Package encoders implements categorical encoders fitted on training data only:
Count, Target and CatBoost
*/
package encoders

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/learntools/tables"
	"go-ml.dev/pkg/zorros"
)

// category statistics of one feature
type stats struct {
	count map[string]int
	sum   map[string]float64
}

func columns(f tables.Frame, cols []string) ([][]string, error) {
	if len(cols) == 0 {
		return nil, zorros.Errorf("no columns to encode")
	}
	r := make([][]string, len(cols))
	for i, c := range cols {
		if !tables.Has(f, c) {
			return nil, zorros.Errorf("frame does not have column `%v`", c)
		}
		r[i] = f.Col(c).Records()
	}
	return r, nil
}

func target(f tables.Frame, label string) ([]float64, error) {
	if label == "" || !tables.Has(f, label) {
		return nil, zorros.Errorf("frame does not have label column `%v`", label)
	}
	y := f.Col(label)
	if y.Type() == series.String {
		return nil, zorros.Errorf("label column `%v` is not numeric", label)
	}
	return y.Float(), nil
}

func collect(keys []string, y []float64) stats {
	s := stats{count: map[string]int{}, sum: map[string]float64{}}
	for i, k := range keys {
		s.count[k]++
		if y != nil {
			s.sum[k] += y[i]
		}
	}
	return s
}

func frame(cols []string, values [][]float64) tables.Frame {
	ss := make([]series.Series, len(cols))
	for i, c := range cols {
		ss[i] = series.New(values[i], series.Float, c)
	}
	return dataframe.New(ss...)
}

var errNotCatBoost = zorros.Errorf("mapping is not a fitted CatBoost encoding")
