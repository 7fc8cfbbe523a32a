package compiler

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// builtinCollisions are expr-lang builtins shadowed by the shared function table.
var builtinCollisions = []string{"abs", "ceil", "floor", "round", "min", "max"}

type exprCompiler struct {
	options []expr.Option
}

func newExprCompiler() *exprCompiler {
	var opts []expr.Option
	for _, name := range builtinCollisions {
		opts = append(opts, expr.DisableBuiltin(name))
	}
	for name, fn := range functions {
		opts = append(opts, expr.Function(name, exprFunction(name, fn), exprSignature(fn)))
	}
	return &exprCompiler{options: opts}
}

// exprFunction adapts a math function to expr-lang's calling convention.
func exprFunction(name string, fn function) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		values := make([]float64, len(params))
		for i, p := range params {
			v, err := toFloat(p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			values[i] = v
		}
		return fn.invoke(name, values)
	}
}

// exprSignature declares argument types so integer literals are passed as floats.
func exprSignature(fn function) any {
	switch fn.arity {
	case 1:
		return new(func(float64) float64)
	case 2:
		return new(func(float64, float64) float64)
	default:
		return new(func(...float64) float64)
	}
}

// Compile implements Compiler.
func (c *exprCompiler) Compile(expression string, vars ...string) (Evaluator, error) {
	src, err := prepare(expression, vars)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	env := make(map[string]any, len(Constants)+len(vars))
	for name, v := range Constants {
		env[name] = v
	}
	for _, name := range vars {
		env[name] = 0.0
	}

	opts := append([]expr.Option{expr.Env(env), expr.AsFloat64()}, c.options...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	return &exprEvaluator{program: program}, nil
}

type exprEvaluator struct {
	program *vm.Program
}

// Eval implements Evaluator.
func (e *exprEvaluator) Eval(bindings map[string]float64) (float64, error) {
	env := make(map[string]any, len(Constants)+len(bindings))
	for name, v := range Constants {
		env[name] = v
	}
	for name, v := range bindings {
		env[name] = v
	}

	out, err := expr.Run(e.program, env)
	if err != nil {
		return 0, err
	}
	return toFloat(out)
}
