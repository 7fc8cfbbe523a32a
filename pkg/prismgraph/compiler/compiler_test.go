package compiler

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engines = []Engine{EngineGovaluate, EngineExpr}

func TestNewUnknownEngine(t *testing.T) {
	_, err := New("mathjs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEngine))
}

func TestNewDefaultsToGovaluate(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &govaluateCompiler{}, c)
}

func TestCompileAndEval(t *testing.T) {
	tests := []struct {
		expression string
		x          float64
		expected   float64
	}{
		{"x^2", 3, 9},
		{"x**2", -2, 4},
		{"-x^2", 3, -9},
		{"2^3^2", 0, 512},
		{"x^2^3", 2, 256},
		{"(2^3)^2", 0, 64},
		{"-2^2^3", 0, -256},
		{"2x + 1", 2, 5},
		{"3(x+1)", 1, 6},
		{"sin(x)", math.Pi / 2, 1},
		{"cos(pi)", 0, -1},
		{"ln(e)", 0, 1},
		{"log(e^2)", 0, 2},
		{"log10(x)", 1000, 3},
		{"sqrt(x) + abs(-x)", 4, 6},
		{"exp(0) + tau", 0, 1 + 2*math.Pi},
		{"max(x, 2, 5)", 1, 5},
		{"min(x, 2)", 1, 1},
		{"atan2(1, 1)", 0, math.Pi / 4},
		{"1/x", 4, 0.25},
		{"7", 0, 7},
	}

	for _, engine := range engines {
		c, err := New(engine)
		require.NoError(t, err)

		for _, tt := range tests {
			ev, err := c.Compile(tt.expression, "x")
			require.NoError(t, err, "%s: compile %q", engine, tt.expression)

			v, err := ev.Eval(map[string]float64{"x": tt.x})
			require.NoError(t, err, "%s: eval %q", engine, tt.expression)
			assert.InDelta(t, tt.expected, v, 1e-9, "%s: %q at x=%v", engine, tt.expression, tt.x)
		}
	}
}

func TestCompileTwoVariables(t *testing.T) {
	for _, engine := range engines {
		c, err := New(engine)
		require.NoError(t, err)

		ev, err := c.Compile("x*y + sin(x)cos(y)", "x", "y")
		require.NoError(t, err, engine)

		v, err := ev.Eval(map[string]float64{"x": 2, "y": 3})
		require.NoError(t, err, engine)
		assert.InDelta(t, 6+math.Sin(2)*math.Cos(3), v, 1e-9, engine)
	}
}

func TestCompileRejects(t *testing.T) {
	tests := []string{
		"(",
		"x +",
		"foo(x)",
		"y^2",
		"",
	}

	for _, engine := range engines {
		c, err := New(engine)
		require.NoError(t, err)

		for _, expression := range tests {
			_, err := c.Compile(expression, "x")
			require.Error(t, err, "%s: %q", engine, expression)

			var ce *CompileError
			assert.True(t, errors.As(err, &ce), "%s: %q should be a CompileError", engine, expression)
		}
	}
}

func TestEvalDomainErrorsAreNotFinite(t *testing.T) {
	tests := []struct {
		expression string
		x          float64
	}{
		{"sqrt(x)", -1},
		{"ln(x)", -1},
		{"1/x", 0},
	}

	for _, engine := range engines {
		c, err := New(engine)
		require.NoError(t, err)

		for _, tt := range tests {
			ev, err := c.Compile(tt.expression, "x")
			require.NoError(t, err)

			v, err := ev.Eval(map[string]float64{"x": tt.x})
			if err != nil {
				continue
			}
			assert.True(t, math.IsNaN(v) || math.IsInf(v, 0), "%s: %q at %v = %v", engine, tt.expression, tt.x, v)
		}
	}
}

func TestEvaluatorConcurrentUse(t *testing.T) {
	for _, engine := range engines {
		c, err := New(engine)
		require.NoError(t, err)

		ev, err := c.Compile("x^2 + 1", "x")
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 64)
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(x float64) {
				defer wg.Done()
				v, err := ev.Eval(map[string]float64{"x": x})
				if err != nil {
					errs <- err
					return
				}
				if v != x*x+1 {
					errs <- errors.New("wrong value under concurrency")
				}
			}(float64(i))
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("%s: %v", engine, err)
		}
	}
}

func TestFunctionArity(t *testing.T) {
	_, err := functions["sin"].invoke("sin", []float64{1, 2})
	assert.Error(t, err)

	_, err = functions["max"].invoke("max", nil)
	assert.Error(t, err)

	v, err := functions["hypot"].invoke("hypot", []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}
