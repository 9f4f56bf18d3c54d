package deliverynote

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontsEmbedded(t *testing.T) {
	fonts, err := LoadFonts(FontOptions{})
	if err != nil {
		t.Fatalf("LoadFonts() error = %v", err)
	}
	if fonts.Family != "gothic" {
		t.Errorf("family = %q, want gothic", fonts.Family)
	}
	if fonts.HasCJK {
		t.Error("embedded Go font reported CJK glyphs")
	}
	if len(fonts.Regular) == 0 {
		t.Error("font bytes are empty")
	}
}

func TestLoadFontsFailures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	latin := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(latin, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opt  FontOptions
	}{
		{"missing file", FontOptions{Path: filepath.Join(dir, "nope.ttf")}},
		{"not a font", FontOptions{Path: garbage}},
		{"no japanese glyphs", FontOptions{Path: latin, RequireCJK: true}},
		{"embedded with cjk required", FontOptions{RequireCJK: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fonts, err := LoadFonts(tt.opt)
			if fonts != nil {
				t.Error("LoadFonts() returned fonts on failure")
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.Code != CodeFontInit {
				t.Errorf("LoadFonts() error = %v, want %s", err, CodeFontInit)
			}
		})
	}
}

func TestNewServiceRequiresFonts(t *testing.T) {
	if _, err := NewService(nil, nil, nil); err == nil {
		t.Error("NewService(nil fonts) error = nil")
	}
}
