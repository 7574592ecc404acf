package office

import (
	"math"
	"testing"
)

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"trimmed", "  E-STOP 4  ", "E-STOP 4"},
		{"nan marker", "nan", ""},
		{"none marker", "None", ""},
		{"padded none marker", " None ", ""},
		{"integral float", 1.0, "1"},
		{"negative integral float", -3.0, "-3"},
		{"zero", 0.0, "0"},
		{"decimal float", 2.5, "2.5"},
		{"rounded to two decimals", 3.14159, "3.14"},
		{"float32", float32(4), "4"},
		{"nan float", math.NaN(), ""},
		{"int", 7, "7"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayText(tt.value)
			if result != tt.expected {
				t.Errorf("DisplayText(%v) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestRotated(t *testing.T) {
	tests := []struct {
		orientation int
		expected    bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		if result := Rotated(tt.orientation); result != tt.expected {
			t.Errorf("Rotated(%d) = %v, expected %v", tt.orientation, result, tt.expected)
		}
	}
}
