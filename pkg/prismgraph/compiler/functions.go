package compiler

import (
	"fmt"
	"math"
)

// function is a math function with a fixed arity, or a variadic one when
// arity is negative (at least one argument).
type function struct {
	arity int
	call  func(args []float64) float64
}

func unary(f func(float64) float64) function {
	return function{arity: 1, call: func(a []float64) float64 { return f(a[0]) }}
}

func binary(f func(float64, float64) float64) function {
	return function{arity: 2, call: func(a []float64) float64 { return f(a[0], a[1]) }}
}

// Constants are the named constants available to every expression.
var Constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"phi": math.Phi,
}

var functions = map[string]function{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"sec":   unary(func(v float64) float64 { return 1 / math.Cos(v) }),
	"csc":   unary(func(v float64) float64 { return 1 / math.Sin(v) }),
	"cot":   unary(func(v float64) float64 { return 1 / math.Tan(v) }),
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),
	"abs":   unary(math.Abs),
	"exp":   unary(math.Exp),
	"ln":    unary(math.Log),
	"log":   unary(math.Log),
	"log10": unary(math.Log10),
	"log2":  unary(math.Log2),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"sign": unary(func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	}),
	"atan2": binary(math.Atan2),
	"pow":   binary(math.Pow),
	"mod":   binary(math.Mod),
	"hypot": binary(math.Hypot),
	"min": {arity: -1, call: func(a []float64) float64 {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Min(m, v)
		}
		return m
	}},
	"max": {arity: -1, call: func(a []float64) float64 {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Max(m, v)
		}
		return m
	}},
}

// IsFunction reports whether name is a known function.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// invoke checks arity and applies fn.
func (fn function) invoke(name string, args []float64) (float64, error) {
	if fn.arity >= 0 && len(args) != fn.arity {
		return 0, fmt.Errorf("%s expects %d argument(s), got %d", name, fn.arity, len(args))
	}
	if fn.arity < 0 && len(args) == 0 {
		return 0, fmt.Errorf("%s expects at least one argument", name)
	}
	return fn.call(args), nil
}

// toFloat coerces an engine result or argument to float64.
func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
