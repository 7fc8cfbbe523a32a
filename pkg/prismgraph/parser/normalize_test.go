package parser

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		token    string
		variant  Variant
		expected string
	}{
		{"y = x^2", Variant2D, "x^2"},
		{"Y=sin(x)", Variant2D, "sin(x)"},
		{"f(x) = 2x + 1", Variant2D, "2x + 1"},
		{"G( x ) = ln(x)", Variant2D, "ln(x)"},
		{"x^2 + 1", Variant2D, "x^2 + 1"},
		{"area = x^2", Variant2D, "x^2"},
		{"a = b = cos(x)", Variant2D, "cos(x)"},
		{"y = ", Variant2D, ""},
		{"y == x", Variant2D, "y == x"},
		{"x >= 0", Variant2D, "x >= 0"},
		{"z = x + y", Variant3D, "x + y"},
		{"f(x, y) = x*y", Variant3D, "x*y"},
		{"h(x,y)=sin(x)", Variant3D, "sin(x)"},
		// The 2D prefix is not stripped in 3D, but the bare "=" rule still applies.
		{"y = x", Variant3D, "x"},
		{"  ", Variant3D, ""},
	}

	for _, tt := range tests {
		result := Normalize(tt.token, tt.variant)
		if result != tt.expected {
			t.Errorf("Normalize(%q, %s) = %q, expected %q", tt.token, tt.variant, result, tt.expected)
		}
	}
}
