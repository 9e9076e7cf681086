package domain

import "testing"

func TestSanitizeInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int
		want  int
	}{
		{"plain number", "1200", 0, 1200},
		{"thousands separator", "1,200", 0, 1200},
		{"currency marker truncates", "$45.99", 0, 45},
		{"currency and separator", "$1,200.50", 0, 1200},
		{"empty returns default", "", 7, 7},
		{"whitespace returns default", "   ", 7, 7},
		{"garbage returns default", "abc", 7, 7},
		{"trailing garbage returns default", "1200 miles", 7, 7},
		{"negative", "-15", 0, -15},
		{"surrounding whitespace", " 300 ", 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInt(tt.input, tt.def); got != tt.want {
				t.Errorf("SanitizeInt(%q, %d) = %d; want %d", tt.input, tt.def, got, tt.want)
			}
		})
	}
}

func TestSanitizeFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{"plain number", "45.99", 0, 45.99},
		{"currency marker", "$45.99", 0, 45.99},
		{"currency and separator", "$1,200.50", 0, 1200.50},
		{"integer text", "300", 0, 300},
		{"empty returns default", "", 9.5, 9.5},
		{"whitespace returns default", "\t ", 9.5, 9.5},
		{"garbage returns default", "n/a", 9.5, 9.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFloat(tt.input, tt.def); got != tt.want {
				t.Errorf("SanitizeFloat(%q, %v) = %v; want %v", tt.input, tt.def, got, tt.want)
			}
		})
	}
}
