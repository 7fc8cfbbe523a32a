// Package sampler builds evaluation grids and samples compiled expressions over them.
package sampler

import "math"

// MinSpan is the smallest span a range may have before it is widened.
const MinSpan = 1e-6

// DegenerateHalfWidth is the half-width used when a range collapses to a point.
const DegenerateHalfWidth = 5.0

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// NormalizeRange orders the bounds and guarantees a non-zero span.
// Non-finite bounds fall back to fallback. A collapsed range is widened to
// ±DegenerateHalfWidth around its center; widened reports that case.
func NormalizeRange(r Range, fallback Range) (normalized Range, widened bool) {
	if !finite(r.Min) || !finite(r.Max) {
		return fallback, false
	}

	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}

	if r.Span() < MinSpan {
		c := r.Center()
		return Range{Min: c - DegenerateHalfWidth, Max: c + DegenerateHalfWidth}, true
	}

	return r, false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
