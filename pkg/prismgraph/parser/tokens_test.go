package parser

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"   \n ; \n", nil},
		{"y = x^2", []string{"y = x^2"}},
		{"y = sin(x)\ny = cos(x)", []string{"y = sin(x)", "y = cos(x)"}},
		{"y = x; y = 2x", []string{"y = x", "y = 2x"}},
		{
			"z = sin(x) * cos(y), x from -5 to 5, y from -5 to 5, grid 40",
			[]string{"z = sin(x) * cos(y)", "x from -5 to 5", "y from -5 to 5", "grid 40"},
		},
		{"y = pow(x, 2), x in [0, 5]", []string{"y = pow(x, 2)", "x in [0, 5]"}},
		{"plot y = x", []string{"y = x"}},
		{"Graph: y = x, y = -x", []string{"y = x", "y = -x"}},
		{"y = x,,  ,y = 1", []string{"y = x", "y = 1"}},
	}

	for _, tt := range tests {
		result := Tokenize(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Tokenize(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestSplitTopLevelUnbalanced(t *testing.T) {
	// A stray closing bracket must not make depth negative.
	parts := splitTopLevel("a), b", ',')
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %#v", len(parts), parts)
	}
}
