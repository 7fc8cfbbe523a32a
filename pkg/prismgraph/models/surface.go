package models

// SurfaceResult represents the output of a 3D surface computation.
// ZMatrix[row][col] corresponds to YValues[row] and XValues[col].
type SurfaceResult struct {
	// Expression is the normalized expression that was compiled.
	Expression string `json:"expression"`
	// Label is the display label (e.g. "z = x + y").
	Label string `json:"label"`
	// Color is the palette color of the surface.
	Color string `json:"color"`
	// XValues are the sampled x coordinates (columns).
	XValues []float64 `json:"x_values"`
	// YValues are the sampled y coordinates (rows).
	YValues []float64 `json:"y_values"`
	// ZMatrix holds the evaluated heights; nil marks an unevaluable point.
	ZMatrix [][]*float64 `json:"z_matrix"`
	// XRange is the x domain [min, max].
	XRange [2]float64 `json:"x_range"`
	// YRange is the y domain [min, max].
	YRange [2]float64 `json:"y_range"`
	// ZRange is the [min, max] of all valid heights.
	ZRange [2]float64 `json:"z_range"`
	// Resolution is the number of samples per axis.
	Resolution int `json:"resolution"`
	// ValidPointCount is the number of non-nil entries in ZMatrix.
	ValidPointCount int `json:"valid_point_count"`
	// Notes lists non-fatal issues.
	Notes []string `json:"notes"`
	// Summary contains human-readable lines describing the surface.
	Summary []string `json:"summary"`
}

// TotalPoints returns the size of the sampled grid.
func (s *SurfaceResult) TotalPoints() int {
	return len(s.XValues) * len(s.YValues)
}
