package types

import "testing"

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name     string
		colorRGB uint32
		char     byte
		want     Glyph
	}{
		{"orange A", 0xFFA500, 'A', Glyph(0xFFA50041)},
		{"black space", 0x000000, ' ', Glyph(0x00000020)},
		{"color truncation", 0x12345678, 'x', Glyph(0x34567878)},
		{"max char", 0x404040, 0xFF, Glyph(0x404040FF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeGlyph(tt.colorRGB, tt.char)
			if got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", uint32(got), uint32(tt.want))
			}
			if got.Char() != tt.char {
				t.Errorf("Char() = %q, want %q", got.Char(), tt.char)
			}
			if got.Color() != tt.colorRGB&maskColor {
				t.Errorf("Color() = 0x%06X, want 0x%06X", got.Color(), tt.colorRGB&maskColor)
			}
		})
	}
}

func TestParseGlyph(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Glyph
		wantErr bool
	}{
		{name: "player", in: "@ #FFFFFF", want: MakeGlyph(0xFFFFFF, '@')},
		{name: "lowercase hex without hash", in: "s 88cc44", want: MakeGlyph(0x88CC44, 's')},
		{name: "missing color", in: "@", wantErr: true},
		{name: "two chars", in: "@@ #FFFFFF", wantErr: true},
		{name: "short color", in: "@ #FFF", wantErr: true},
		{name: "bad hex", in: "@ #GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGlyph(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGlyph(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseGlyph(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(0xFFA500, 'A'), "Glyph{char='A', color=#FFA500}"},
		{"non printable", MakeGlyph(0x000000, '\n'), "Glyph{char='\\x0A', color=#000000}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
