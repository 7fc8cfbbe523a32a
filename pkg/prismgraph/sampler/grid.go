package sampler

import "math"

// Resolution describes sampling density along an axis.
// Exactly one of Step or Count is expected to be set; Count wins when both are.
type Resolution struct {
	// Step is the distance between consecutive samples.
	Step float64
	// Count is the number of samples along the axis.
	Count int
}

// IsZero reports whether neither Step nor Count is set.
func (r Resolution) IsZero() bool {
	return r.Step <= 0 && r.Count <= 0
}

// SampleCount derives the number of samples for span from res and clamps
// it to [lo, hi]. A zero resolution yields lo.
func SampleCount(span float64, res Resolution, lo, hi int) int {
	n := lo
	switch {
	case res.Count > 0:
		n = res.Count
	case res.Step > 0:
		// The epsilon keeps span/step from landing just under an integer.
		steps := math.Floor(span/res.Step + 1e-9)
		if steps >= float64(hi) {
			n = hi
		} else {
			n = int(steps) + 1
		}
	}
	return Clamp(n, lo, hi)
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Linspace returns n evenly spaced values from min to max inclusive, each
// rounded to 6 decimal places. With n < 2 it returns [min, max].
func Linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{Round6(min), Round6(max)}
	}

	values := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range values {
		values[i] = Round6(min + float64(i)*step)
	}
	// Pin the last value to avoid accumulated error at the endpoint.
	values[n-1] = Round6(max)
	return values
}

// Round6 rounds v to 6 decimal places.
func Round6(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		// Normalize negative zero.
		return 0
	}
	return r
}
