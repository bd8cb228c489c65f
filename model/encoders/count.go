package encoders

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/learntools/model"
	"go-ml.dev/pkg/learntools/tables"
)

/*
Count replaces a category with the number of its occurrences in the training data.
Categories never seen in training are encoded as 0
*/
type Count struct {
	Columns []string
}

type countMapping struct {
	cols  []string
	stats []stats
}

func (e Count) Fit(train tables.Frame, _ string) (model.Mapping, error) {
	x, err := columns(train, e.Columns)
	if err != nil {
		return nil, err
	}
	m := &countMapping{cols: append([]string(nil), e.Columns...), stats: make([]stats, len(x))}
	for i, keys := range x {
		m.stats[i] = collect(keys, nil)
	}
	return m, nil
}

func (m *countMapping) Columns() []string { return m.cols }

func (m *countMapping) Transform(f tables.Frame) (tables.Frame, error) {
	x, err := columns(f, m.cols)
	if err != nil {
		return f, err
	}
	ss := make([]series.Series, len(x))
	for i, keys := range x {
		v := make([]int, len(keys))
		for j, k := range keys {
			v[j] = m.stats[i].count[k]
		}
		ss[i] = series.New(v, series.Int, m.cols[i])
	}
	return tables.Ok(dataframe.New(ss...))
}
