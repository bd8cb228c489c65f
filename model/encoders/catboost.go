package encoders

import (
	"go-ml.dev/pkg/learntools/model"
	"go-ml.dev/pkg/learntools/tables"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

/*
CatBoost replaces a category with the label mean regularized by the prior:
(sum + prior*a) / (count + a).
Parameters: a (1), sigma (0, no noise) and random_state (0)
*/
type CatBoost struct {
	Columns []string
	Params  model.Params
}

type catBoostMapping struct {
	cols  []string
	prior float64
	a     float64
	sigma float64
	seed  uint64
	stats []stats
}

func (e CatBoost) Fit(train tables.Frame, label string) (model.Mapping, error) {
	if err := e.Params.Check("a", "sigma", "random_state"); err != nil {
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
	m := &catBoostMapping{
		cols:  append([]string(nil), e.Columns...),
		a:     e.Params.Get("a", 1),
		sigma: e.Params.Get("sigma", 0),
		seed:  uint64(e.Params.Get("random_state", 0)),
		stats: make([]stats, len(x)),
	}
	if len(y) > 0 {
		m.prior = stat.Mean(y, nil)
	}
	for i, keys := range x {
		m.stats[i] = collect(keys, y)
	}
	return m, nil
}

func (m *catBoostMapping) Columns() []string { return m.cols }

/*
Transform encodes rows with statistics of the whole training data
*/
func (m *catBoostMapping) Transform(f tables.Frame) (tables.Frame, error) {
	x, err := columns(f, m.cols)
	if err != nil {
		return f, err
	}
	r := make([][]float64, len(x))
	for i, keys := range x {
		r[i] = make([]float64, len(keys))
		s := m.stats[i]
		for j, k := range keys {
			if n, ok := s.count[k]; ok {
				r[i][j] = (s.sum[k] + m.prior*m.a) / (float64(n) + m.a)
			} else {
				r[i][j] = m.prior
			}
		}
	}
	return tables.Ok(frame(m.cols, r))
}

/*
TransformWithTarget encodes rows with ordered statistics,
every row sees the labels of rows before it only.
If sigma is not zero values are multiplied by gaussian noise N(1, sigma) seeded by random_state
*/
func TransformWithTarget(mp model.Mapping, f tables.Frame, label string) (tables.Frame, error) {
	m, ok := mp.(*catBoostMapping)
	if !ok {
		return f, errNotCatBoost
	}
	x, err := columns(f, m.cols)
	if err != nil {
		return f, err
	}
	y, err := target(f, label)
	if err != nil {
		return f, err
	}
	var noise *distuv.Normal
	if m.sigma != 0 {
		noise = &distuv.Normal{Mu: 1, Sigma: m.sigma, Src: rand.NewSource(m.seed)}
	}
	r := make([][]float64, len(x))
	for i, keys := range x {
		r[i] = make([]float64, len(keys))
		count := map[string]int{}
		sum := map[string]float64{}
		for j, k := range keys {
			r[i][j] = (sum[k] + m.prior*m.a) / (float64(count[k]) + m.a)
			if noise != nil {
				r[i][j] *= noise.Rand()
			}
			count[k]++
			sum[k] += y[j]
		}
	}
	return tables.Ok(frame(m.cols, r))
}
