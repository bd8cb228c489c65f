package encoders

import (
	"go-ml.dev/pkg/learntools/model"
	"go-ml.dev/pkg/learntools/tables"
	"gonum.org/v1/gonum/stat"
	"math"
)

/*
Target replaces a category with the mean of the label blended with the prior mean.
Parameters: smoothing (1) and min_samples_leaf (1).
Categories seen once or never seen in training are encoded with the prior
*/
type Target struct {
	Columns []string
	Params  model.Params
}

type targetMapping struct {
	cols   []string
	prior  float64
	values []map[string]float64
}

func (e Target) Fit(train tables.Frame, label string) (model.Mapping, error) {
	if err := e.Params.Check("smoothing", "min_samples_leaf"); err != nil {
		return nil, err
	}
	x, err := columns(train, e.Columns)
	if err != nil {
		return nil, err
	}
	y, err := target(train, label)
	if err != nil {
		return nil, err
	}
	smoothing := e.Params.Get("smoothing", 1)
	leaf := e.Params.Get("min_samples_leaf", 1)
	m := &targetMapping{cols: append([]string(nil), e.Columns...), values: make([]map[string]float64, len(x))}
	if len(y) > 0 {
		m.prior = stat.Mean(y, nil)
	}
	for i, keys := range x {
		s := collect(keys, y)
		v := make(map[string]float64, len(s.count))
		for k, n := range s.count {
			if n == 1 {
				v[k] = m.prior
				continue
			}
			mean := s.sum[k] / float64(n)
			w := 1 / (1 + math.Exp(-(float64(n)-leaf)/smoothing))
			v[k] = m.prior*(1-w) + mean*w
		}
		m.values[i] = v
	}
	return m, nil
}

func (m *targetMapping) Columns() []string { return m.cols }

func (m *targetMapping) Transform(f tables.Frame) (tables.Frame, error) {
	x, err := columns(f, m.cols)
	if err != nil {
		return f, err
	}
	r := make([][]float64, len(x))
	for i, keys := range x {
		r[i] = make([]float64, len(keys))
		for j, k := range keys {
			if v, ok := m.values[i][k]; ok {
				r[i][j] = v
			} else {
				r[i][j] = m.prior
			}
		}
	}
	return tables.Ok(frame(m.cols, r))
}
