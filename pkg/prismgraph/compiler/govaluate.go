package compiler

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

type govaluateCompiler struct {
	functions map[string]govaluate.ExpressionFunction
}

func newGovaluateCompiler() *govaluateCompiler {
	fns := make(map[string]govaluate.ExpressionFunction, len(functions))
	for name, fn := range functions {
		fns[name] = govaluateFunction(name, fn)
	}
	return &govaluateCompiler{functions: fns}
}

// govaluateFunction adapts a math function to govaluate's calling convention.
func govaluateFunction(name string, fn function) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		values := make([]float64, len(args))
		for i, arg := range args {
			v, err := toFloat(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			values[i] = v
		}
		return fn.invoke(name, values)
	}
}

// Compile implements Compiler.
func (c *govaluateCompiler) Compile(expression string, vars ...string) (Evaluator, error) {
	src, err := prepare(expression, vars)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	// govaluate reads "^" as bitwise xor; "**" is its power operator.
	src = strings.ReplaceAll(src, "^", "**")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, c.functions)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	return &govaluateEvaluator{expr: parsed}, nil
}

type govaluateEvaluator struct {
	expr *govaluate.EvaluableExpression
}

// Eval implements Evaluator.
func (e *govaluateEvaluator) Eval(bindings map[string]float64) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, fmt.Errorf("evaluation panicked: %v", r)
		}
	}()

	params := make(map[string]interface{}, len(Constants)+len(bindings))
	for name, v := range Constants {
		params[name] = v
	}
	for name, v := range bindings {
		params[name] = v
	}

	v, err := e.expr.Evaluate(params)
	if err != nil {
		return 0, err
	}
	return toFloat(v)
}
