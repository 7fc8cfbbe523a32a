// Package compiler turns normalized expression strings into reusable evaluators.
//
// The grammar itself is provided by a third-party engine (govaluate or
// expr-lang). This package owns the shared surface around it: notation
// rewriting, the function and constant table, identifier validation and
// result coercion.
package compiler

import (
	"errors"
	"fmt"
)

// Engine names an expression backend.
type Engine string

const (
	// EngineGovaluate compiles with github.com/Knetic/govaluate.
	EngineGovaluate Engine = "govaluate"
	// EngineExpr compiles with github.com/expr-lang/expr.
	EngineExpr Engine = "expr"
)

// ErrUnknownEngine is returned by New for an unsupported engine name.
var ErrUnknownEngine = errors.New("unknown expression engine")

// ErrNotNumeric indicates an expression produced a non-numeric value.
var ErrNotNumeric = errors.New("expression did not produce a number")

// Evaluator evaluates a compiled expression. Implementations are safe for
// concurrent use and never retain the bindings map.
type Evaluator interface {
	Eval(bindings map[string]float64) (float64, error)
}

// Compiler compiles an expression over the given free variables.
type Compiler interface {
	Compile(expression string, vars ...string) (Evaluator, error)
}

// CompileError describes a rejected expression.
type CompileError struct {
	Expression string
	Err        error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("cannot compile %q: %v", e.Expression, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// New returns a compiler for engine. The empty engine selects govaluate.
func New(engine Engine) (Compiler, error) {
	switch engine {
	case "", EngineGovaluate:
		return newGovaluateCompiler(), nil
	case EngineExpr:
		return newExprCompiler(), nil
	default:
		return nil, fmt.Errorf("%w: %s (must be govaluate or expr)", ErrUnknownEngine, engine)
	}
}
