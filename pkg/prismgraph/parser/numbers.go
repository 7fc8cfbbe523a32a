package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piPattern matches multiples and fractions of pi: "pi", "-2pi", "3*pi", "pi/2".
var piPattern = regexp.MustCompile(`^([-+]?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d*\.?\d+))?$`)

// ParseNumber parses a directive number.
// It accepts plain floats, exponent notation and multiples of pi.
// Non-finite or malformed values report ok == false.
func ParseNumber(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "π", "pi")
	if s == "" {
		return 0, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, isFinite(v)
	}

	m := piPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	coef := 1.0
	if m[2] != "" {
		c, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		coef = c
	}
	if m[1] == "-" {
		coef = -coef
	}

	v := coef * math.Pi
	if m[3] != "" {
		d, err := strconv.ParseFloat(m[3], 64)
		if err != nil || d == 0 {
			return 0, false
		}
		v /= d
	}

	return v, isFinite(v)
}

// parseCount parses a positive integer sample count.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
