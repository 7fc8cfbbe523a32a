package prismgraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput indicates the input contained no text.
var ErrEmptyInput = errors.New("provide an expression to graph, for example \"y = x^2\" or \"z = sin(x) * cos(y)\"")

// ErrNoExpressions indicates only directives were found.
var ErrNoExpressions = errors.New("no expressions found; try something like \"y = sin(x) for x from -10 to 10\"")

// ErrNothingPlottable indicates every expression failed to parse or produced no real values.
var ErrNothingPlottable = errors.New("nothing could be plotted; adjust the expressions or the domain")

// GraphError represents a hard failure of a graph computation.
type GraphError struct {
	Variant Variant
	// Notes are the non-fatal issues collected before the failure.
	Notes []string
	Err   error
}

func (e *GraphError) Error() string {
	if len(e.Notes) == 0 {
		return fmt.Sprintf("%s graph: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("%s graph: %v (%s)", e.Variant, e.Err, strings.Join(e.Notes, "; "))
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

// NewGraphError creates a new GraphError.
func NewGraphError(variant Variant, notes []string, err error) *GraphError {
	return &GraphError{
		Variant: variant,
		Notes:   notes,
		Err:     err,
	}
}
