/*
Package featureengineering implements checks of the categorical encodings exercise
over the TalkingData clicks dataset
*/
package featureengineering

import (
	"context"
	"fmt"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/learntools/fu"
	"go-ml.dev/pkg/learntools/model"
	"go-ml.dev/pkg/learntools/tables"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
)

const (
	ClickTime    = "click_time"
	IsAttributed = "is_attributed"
	// TutorialID is the course lesson the exercise belongs to
	TutorialID = 271
	// DefaultDataFile is the lesson dataset, relative to the datasets cache
	DefaultDataFile = "feature-engineering-data/baseline_data.csv"
)

// CatFeatures are the categorical columns of the clicks dataset
var CatFeatures = []string{"ip", "app", "device", "os", "channel"}

// Types forced when reading the clicks dataset
var Types = tables.Types{
	ClickTime:    series.String,
	"ip":         series.Int,
	"app":        series.Int,
	"device":     series.Int,
	"os":         series.Int,
	"channel":    series.Int,
	IsAttributed: series.Int,
}

/*
Config of the lesson setup
*/
type Config struct {
	DataFile      string   // .csv, .csv.xz or sqlite file; relative paths are resolved in the datasets cache
	Table         string   // sqlite table, clicks by default
	ValidFraction float64  // 0.1 by default
	Tolerance     *float64 // float cells tolerance of equality checks, tables.DefaultTolerance if nil, 0 is exact
	Verbose       func(string)
}

/*
Context is the loaded dataset and reference answers computed once by Setup
*/
type Context struct {
	Dataset       model.Dataset
	ValidFraction float64
	Tolerance     float64

	CountExpected    [2]tables.Frame // train, valid
	TargetExpected   [2]tables.Frame
	CatBoostExpected [2]tables.Frame
}

/*
Setup loads the dataset and computes reference answers
*/
func Setup(ctx context.Context, cfg Config) (*Context, error) {
	path := fu.DataPath(firstNonEmpty(cfg.DataFile, DefaultDataFile))
	src := tables.Source{Types: Types, Table: cfg.Table}
	f, err := src.Read(ctx, path)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to load clicks dataset: %v", err.Error())
	}
	verbose(cfg, fmt.Sprintf("loaded %d rows from %s", f.Nrow(), path))
	return NewContext(model.Dataset{Source: f, Timestamp: ClickTime, Label: IsAttributed, Features: CatFeatures}, cfg)
}

/*
LuckySetup loads the lesson context and panics on error
*/
func LuckySetup(ctx context.Context, cfg Config) *Context {
	c, err := Setup(ctx, cfg)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return c
}

/*
NewContext computes reference answers over the dataset
*/
func NewContext(ds model.Dataset, cfg Config) (*Context, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	c := &Context{
		Dataset:       ds,
		ValidFraction: fu.Fnzd(cfg.ValidFraction, 0.1),
		Tolerance:     tables.DefaultTolerance,
	}
	if cfg.Tolerance != nil {
		if *cfg.Tolerance < 0 {
			return nil, zorros.Errorf("tolerance must not be negative, got %v", *cfg.Tolerance)
		}
		c.Tolerance = *cfg.Tolerance
	}
	s, err := ds.Splits(c.ValidFraction)
	if err != nil {
		return nil, err
	}
	if s.Valid.Nrow() == 0 {
		zlog.Warning(fmt.Sprintf("dataset of %d rows has empty validation part", ds.Len()))
	}
	var e error
	if c.CountExpected[0], c.CountExpected[1], e = CountEncodingsSolution(s); e != nil {
		return nil, zorros.Wrapf(e, "count encodings: %v", e.Error())
	}
	if c.TargetExpected[0], c.TargetExpected[1], e = TargetEncodingsSolution(s); e != nil {
		return nil, zorros.Wrapf(e, "target encodings: %v", e.Error())
	}
	if c.CatBoostExpected[0], c.CatBoostExpected[1], e = CatBoostEncodingsSolution(s); e != nil {
		return nil, zorros.Wrapf(e, "catboost encodings: %v", e.Error())
	}
	verbose(cfg, fmt.Sprintf("train %d, valid %d, test %d rows", s.Train.Nrow(), s.Valid.Nrow(), s.Test.Nrow()))
	return c, nil
}

/*
GetDataSplits orders the dataset by click time and splits it into train, validation and test parts.
Validation and test parts have the same size set by the fraction
*/
func (c *Context) GetDataSplits(validFraction float64) (train, valid, test tables.Frame, err error) {
	s, err := c.Dataset.Splits(validFraction)
	return s.Train, s.Valid, s.Test, err
}

func verbose(cfg Config, s string) {
	if cfg.Verbose != nil {
		cfg.Verbose(s)
	}
}

func firstNonEmpty(s ...string) string {
	for _, x := range s {
		if x != "" {
			return x
		}
	}
	return ""
}
