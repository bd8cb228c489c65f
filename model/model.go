package model

import (
	"go-ml.dev/pkg/learntools/tables"
	"go-ml.dev/pkg/zorros"
)

/*
Encoder is a categorical encoder learning a mapping from training data.
Unsupervised encoders ignore the label
*/
type Encoder interface {
	Fit(train tables.Frame, label string) (Mapping, error)
}

/*
Mapping is a fitted encoding
*/
type Mapping interface {
	// Columns are features the mapping encodes
	Columns() []string
	// Transform returns new frame with the encoded columns only,
	// columns have the same names as original features
	Transform(tables.Frame) (tables.Frame, error)
}

/*
Encode fits the encoder on the train part and joins encoded columns with suffix
to the train and validation parts
*/
func Encode(e Encoder, s Split, label, suffix string) (train, valid tables.Frame, err error) {
	m, err := e.Fit(s.Train, label)
	if err != nil {
		return
	}
	if train, err = join(m, s.Train, suffix); err != nil {
		return
	}
	valid, err = join(m, s.Valid, suffix)
	return
}

func join(m Mapping, f tables.Frame, suffix string) (tables.Frame, error) {
	enc, err := m.Transform(f)
	if err != nil {
		return f, err
	}
	return tables.Join(f, enc, suffix)
}

/*
Params is a set of encoder hyper-parameters
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Check reports an error if the parameter set has a name not in known
*/
func (p Params) Check(known ...string) error {
loop:
	for k := range p {
		for _, n := range known {
			if n == k {
				continue loop
			}
		}
		return zorros.Errorf("encoder does not have parameter `%v`", k)
	}
	return nil
}
