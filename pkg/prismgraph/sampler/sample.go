package sampler

import "math"

// Evaluator evaluates a compiled expression for a set of variable bindings.
type Evaluator interface {
	Eval(bindings map[string]float64) (float64, error)
}

// Grid is the result of sampling an expression over a 2D domain.
type Grid struct {
	// Z holds one row per y value and one column per x value.
	Z [][]*float64
	// Valid is the number of non-nil entries in Z.
	Valid int
	// ZMin and ZMax bound the valid entries (zero when Valid == 0).
	ZMin float64
	ZMax float64
}

// Sample1D evaluates ev at every value of xs bound to variable name.
// Failed or non-finite evaluations are recorded as nil.
func Sample1D(ev Evaluator, name string, xs []float64) (ys []*float64, valid int) {
	ys = make([]*float64, len(xs))
	bindings := make(map[string]float64, 1)

	for i, x := range xs {
		bindings[name] = x
		if v, ok := evalPoint(ev, bindings); ok {
			ys[i] = &v
			valid++
		}
	}

	return ys, valid
}

// Sample2D evaluates ev at every (x, y) pair of the grid xs × ys.
func Sample2D(ev Evaluator, xs, ys []float64) Grid {
	grid := Grid{Z: make([][]*float64, len(ys))}
	bindings := make(map[string]float64, 2)

	for row, y := range ys {
		line := make([]*float64, len(xs))
		bindings["y"] = y
		for col, x := range xs {
			bindings["x"] = x
			v, ok := evalPoint(ev, bindings)
			if !ok {
				continue
			}
			line[col] = &v
			if grid.Valid == 0 || v < grid.ZMin {
				grid.ZMin = v
			}
			if grid.Valid == 0 || v > grid.ZMax {
				grid.ZMax = v
			}
			grid.Valid++
		}
		grid.Z[row] = line
	}

	return grid
}

// evalPoint evaluates a single point, mapping errors, panics and
// non-finite results to ok == false.
func evalPoint(ev Evaluator, bindings map[string]float64) (v float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = 0, false
		}
	}()

	v, err := ev.Eval(bindings)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
