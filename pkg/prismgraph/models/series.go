// Package models defines the result structures produced by graph computations.
package models

// Point represents a single sample of a 2D series.
type Point struct {
	// X is the sampled abscissa, rounded to 6 decimal places.
	X float64 `json:"x"`
	// Y is the evaluated value (nil if evaluation failed or was non-finite).
	Y *float64 `json:"y"`
}

// Series represents one plotted curve derived from one expression.
type Series struct {
	// ID is a stable identifier derived from the series index and expression.
	ID string `json:"id"`
	// Expression is the normalized expression that was compiled.
	Expression string `json:"expression"`
	// Label is the display label (e.g. "y = x^2").
	Label string `json:"label"`
	// Color is the palette color assigned by series index.
	Color string `json:"color"`
	// Points contains every sample, including failed ones.
	Points []Point `json:"points"`
	// ValidPointCount is the number of points with a non-nil Y.
	ValidPointCount int `json:"valid_point_count"`
}

// GraphResult represents the output of a 2D graph computation.
type GraphResult struct {
	// XMin is the lower bound of the sampled domain.
	XMin float64 `json:"x_min"`
	// XMax is the upper bound of the sampled domain.
	XMax float64 `json:"x_max"`
	// Step is the distance between consecutive samples.
	Step float64 `json:"step"`
	// SampleCount is the number of samples per series.
	SampleCount int `json:"sample_count"`
	// Series contains the plotted curves in input order.
	Series []Series `json:"series"`
	// Notes lists non-fatal issues (skipped expressions and similar).
	Notes []string `json:"notes"`
	// Summary contains human-readable lines describing the plot.
	Summary []string `json:"summary"`
}
