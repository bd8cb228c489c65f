package model

import (
	"go-ml.dev/pkg/learntools/tables"
	"go-ml.dev/pkg/zorros"
	"math"
)

/*
Dataset is a fixed course dataset ordered in time
*/
type Dataset struct {
	Source    tables.Frame // all rows as loaded
	Timestamp string       // name of the text column with ISO timestamps
	Label     string       // name of the binary label column
	Features  []string     // categorical feature columns
}

/*
Split is three disjoint and time ordered parts of a dataset
*/
type Split struct {
	Train, Valid, Test tables.Frame
}

/*
ErrBadFraction is reported when the validation fraction can't produce a three-way split
*/
var ErrBadFraction = zorros.Errorf("validation fraction must be in (0, 0.5)")

/*
Validate checks the dataset has all declared columns
*/
func (ds Dataset) Validate() error {
	if ds.Source.Err != nil {
		return zorros.Trace(ds.Source.Err)
	}
	for _, c := range append([]string{ds.Timestamp, ds.Label}, ds.Features...) {
		if !tables.Has(ds.Source, c) {
			return zorros.Errorf("dataset does not have column `%v`", c)
		}
	}
	return nil
}

/*
Len returns the rows count
*/
func (ds Dataset) Len() int {
	return ds.Source.Nrow()
}

/*
Splits orders rows by the timestamp column and takes two trailing parts
of floor(N*validFraction) rows for validation and test, the rest is the train part
*/
func (ds Dataset) Splits(validFraction float64) (s Split, err error) {
	if !(validFraction > 0 && validFraction < 0.5) {
		err = zorros.Wrapf(ErrBadFraction, "bad validation fraction %v", validFraction)
		return
	}
	sorted, err := tables.SortBy(ds.Source, ds.Timestamp)
	if err != nil {
		return
	}
	n := sorted.Nrow()
	rows := int(math.Floor(float64(n) * validFraction))
	s.Train = tables.Rows(sorted, 0, n-rows*2)
	s.Valid = tables.Rows(sorted, n-rows*2, n-rows)
	s.Test = tables.Rows(sorted, n-rows, n)
	return
}

/*
LuckySplits splits dataset and panics on error
*/
func (ds Dataset) LuckySplits(validFraction float64) Split {
	s, err := ds.Splits(validFraction)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return s
}
