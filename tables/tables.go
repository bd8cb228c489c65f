/*
Package tables implements immutable frames of named columns used by the course datasets.
Frames are gota dataframes, all operations here return new frames
*/
package tables

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/zorros"
	"sort"
)

/*
Frame is a table of named columns
*/
type Frame = dataframe.DataFrame

/*
Types maps column names to column types forced when reading a frame
*/
type Types map[string]series.Type

// Empty frame without columns
var Empty = dataframe.New()

/*
Ok returns the deferred error of the frame if any
*/
func Ok(f Frame) (Frame, error) {
	if f.Err != nil {
		return f, zorros.Trace(f.Err)
	}
	return f, nil
}

/*
Rows returns the subset of rows in the [from,to) range
*/
func Rows(f Frame, from, to int) Frame {
	idx := make([]int, to-from)
	for i := range idx {
		idx[i] = from + i
	}
	if len(idx) == 0 {
		return emptyLike(f)
	}
	return f.Subset(idx)
}

func emptyLike(f Frame) Frame {
	cols := make([]series.Series, f.Ncol())
	for i, n := range f.Names() {
		c := f.Col(n)
		cols[i] = series.New([]string{}, c.Type(), n)
	}
	return dataframe.New(cols...)
}

/*
SortBy returns the frame stable-sorted by the text representation of the column.
The text order is a time order for the ISO timestamps the datasets use
*/
func SortBy(f Frame, column string) (Frame, error) {
	if !Has(f, column) {
		return f, zorros.Errorf("frame does not have column `%v`", column)
	}
	keys := f.Col(column).Records()
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })
	if len(idx) == 0 {
		return f, nil
	}
	return Ok(f.Subset(idx))
}

/*
Has reports whether the frame has column
*/
func Has(f Frame, column string) bool {
	for _, n := range f.Names() {
		if n == column {
			return true
		}
	}
	return false
}

/*
Select returns the frame restricted to columns in the given order
*/
func Select(f Frame, columns []string) (Frame, error) {
	for _, c := range columns {
		if !Has(f, c) {
			return f, zorros.Errorf("frame does not have column `%v`", c)
		}
	}
	return Ok(f.Select(columns))
}

/*
Join appends columns of the other frame renamed with suffix.
Both frames must have the same rows count, rows are matched by position
*/
func Join(f, other Frame, suffix string) (Frame, error) {
	if f.Nrow() != other.Nrow() {
		return f, zorros.Errorf("can't join frames with %d and %d rows", f.Nrow(), other.Nrow())
	}
	r := f.Copy()
	for _, n := range other.Names() {
		name := n + suffix
		if Has(r, name) {
			return f, zorros.Errorf("column `%v` already exists", name)
		}
		c := other.Col(n).Copy()
		c.Name = name
		r = r.Mutate(c)
		if r.Err != nil {
			return f, zorros.Trace(r.Err)
		}
	}
	return r, nil
}

/*
Concat appends rows of frames one after another, all frames must have the same columns
*/
func Concat(f ...Frame) (Frame, error) {
	if len(f) == 0 {
		return Empty, nil
	}
	r := f[0]
	for _, x := range f[1:] {
		if x.Nrow() == 0 {
			continue
		}
		if r.Nrow() == 0 {
			r = x
			continue
		}
		r = r.RBind(x)
		if r.Err != nil {
			return r, zorros.Trace(r.Err)
		}
	}
	return r, nil
}

/*
LuckyConcat concatenates frames and panics on error
*/
func LuckyConcat(f ...Frame) Frame {
	r, err := Concat(f...)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}
