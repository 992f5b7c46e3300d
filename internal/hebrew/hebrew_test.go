package hebrew

import (
	"testing"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected bool
	}{
		{"hebrew only", "שלום", true},
		{"latin only", "hello", false},
		{"mixed", "a ב c", true},
		{"empty", "", false},
		{"digits", "1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.in); got != tt.expected {
				t.Errorf("Contains(%q) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestVisual(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"pure hebrew reverses", "שלום", "םולש"},
		{"latin untouched", "Iron 26", "Iron 26"},
		{"empty", "", ""},
		{"embedded latin keeps order", "יסוד Fe בטבע", "עבטב Fe דוסי"},
		{"trailing number", "מספר 26", "26 רפסמ"},
		{"decimal and percent stay intact", "שפע 54.9%", "54.9% עפש"},
		{"latin base with hebrew run", "Fe ברזל", "Fe לזרב"},
		{"brackets mirrored", "אבג (Fe) דהו", "והד (Fe) גבא"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visual(tt.in); got != tt.expected {
				t.Errorf("Visual(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestVisualRoundTrip(t *testing.T) {
	in := "ברזל"
	if got := Visual(Visual(in)); got != in {
		t.Errorf("double Visual(%q) = %q, expected the original", in, got)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"שלום", 4},
		{"Fe ברזל", 7},
	}

	for _, tt := range tests {
		if got := Width(tt.in); got != tt.expected {
			t.Errorf("Width(%q) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"fits", "שלום", 10, "שלום"},
		{"exact fit", "abc", 3, "abc"},
		{"cut latin", "hello world", 5, "hell…"},
		{"cut hebrew", "אבגדה", 3, "אב…"},
		{"zero width", "whatever", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.in, tt.max, got, tt.expected)
			}
			if w := Width(Truncate(tt.in, tt.max)); tt.max > 0 && w > tt.max {
				t.Errorf("Truncate(%q, %d) is %d cells wide", tt.in, tt.max, w)
			}
		})
	}
}
