package deliverynote

import (
	"strings"
	"testing"
)

func TestFitFontSize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 8},
		{"short", "ABC", 8},
		{"exactly max", strings.Repeat("a", 20), 8},
		{"slightly over", strings.Repeat("a", 25), 6.4},
		{"double", strings.Repeat("a", 40), 6},
		{"very long", strings.Repeat("a", 200), 6},
		{"runes not bytes", strings.Repeat("納", 20), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitFontSize(tt.text, 8, 20, DefaultMinFontSize)
			if got != tt.want {
				t.Errorf("FitFontSize(len=%d) = %v, want %v", len(tt.text), got, tt.want)
			}
		})
	}
}

func TestFitFontSizeBounds(t *testing.T) {
	for n := 0; n <= 80; n++ {
		text := strings.Repeat("x", n)
		got := FitFontSize(text, 8, 20, DefaultMinFontSize)
		switch {
		case n <= 20:
			if got != 8 {
				t.Errorf("n=%d: got %v, want 8", n, got)
			}
		default:
			if got < 6 || got >= 8 {
				t.Errorf("n=%d: got %v, want in [6, 8)", n, got)
			}
		}
	}
}
