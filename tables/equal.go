package tables

import (
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/floats/scalar"
	"math"
	"strings"
)

// DefaultTolerance is the absolute-or-relative tolerance for float cells
const DefaultTolerance = 1e-9

// TextTolerance is enough for float cells read back from CSV text, gota writes them with six decimals
const TextTolerance = 1e-6

func numeric(t series.Type) bool {
	return t == series.Int || t == series.Float || t == series.Bool
}

/*
Equal returns nil if frames have the same columns in the same order and the same cells.
Numeric cells are compared within tolerance when any of two columns is float,
other cells are compared by their text representation
*/
func Equal(expected, actual Frame, tol float64) error {
	if expected.Err != nil {
		return zorros.Trace(expected.Err)
	}
	if actual.Err != nil {
		return zorros.Errorf("invalid frame: %v", actual.Err.Error())
	}
	en, an := expected.Names(), actual.Names()
	if strings.Join(en, ",") != strings.Join(an, ",") {
		return zorros.Errorf("expected columns %v, but got %v", en, an)
	}
	if expected.Nrow() != actual.Nrow() {
		return zorros.Errorf("expected %d rows, but got %d", expected.Nrow(), actual.Nrow())
	}
	for _, n := range en {
		ec, ac := expected.Col(n), actual.Col(n)
		if (ec.Type() == series.Float || ac.Type() == series.Float) && numeric(ec.Type()) && numeric(ac.Type()) {
			ef, af := ec.Float(), ac.Float()
			for i := range ef {
				if !sameFloat(ef[i], af[i], tol) {
					return zorros.Errorf("column `%v` row %d: expected %v, but got %v", n, i, ef[i], af[i])
				}
			}
			continue
		}
		er, ar := ec.Records(), ac.Records()
		for i := range er {
			if er[i] != ar[i] {
				return zorros.Errorf("column `%v` row %d: expected %v, but got %v", n, i, er[i], ar[i])
			}
		}
	}
	return nil
}

func sameFloat(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if tol == 0 {
		return a == b
	}
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}
