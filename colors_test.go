package charts

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
		err   error
	}{
		{input: "#fff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{input: "#3b82f6", want: color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}},
		{input: "#3b82f680", want: color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0x80}},
		{input: "rgb(34, 197, 94)", want: color.NRGBA{R: 34, G: 197, B: 94, A: 255}},
		{input: "rgba(0, 0, 0, 0.5)", want: color.NRGBA{A: 128}},
		{input: " rgba(255,255,255,0.1) ", want: color.NRGBA{R: 255, G: 255, B: 255, A: 26}},
		{input: "#ggg", err: ErrInvalidColor},
		{input: "#12345", err: ErrInvalidColor},
		{input: "rgba(1, 2, 3)", err: ErrInvalidColor},
		{input: "blue", err: ErrInvalidColor},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseColor(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseColor(%q) error = %v, want %v", test.input, err, test.err)
			}
			if got != test.want {
				t.Errorf("ParseColor(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(NewPoint(0, 0), NewPoint(0, 100),
		NewStop(1, "#ffffff"),
		NewStop(0, "#000000"),
	)
	tests := []struct {
		y    float64
		want uint8
	}{
		{y: -10, want: 0},
		{y: 0, want: 0},
		{y: 50, want: 128},
		{y: 100, want: 255},
		{y: 200, want: 255},
	}
	for _, test := range tests {
		if got := g.At(10, test.y); got.R != test.want {
			t.Errorf("At(10, %f) = %d, want %d", test.y, got.R, test.want)
		}
	}
}

func TestPalette(t *testing.T) {
	if len(Blues) != 3 {
		t.Fatalf("Blues has %d colors, want 3", len(Blues))
	}
	if Blues.At(4) != Blues.At(1) {
		t.Errorf("palette does not cycle")
	}
	if Hex(Blues.At(0)) != "#60a5fa" {
		t.Errorf("Hex() = %s, want #60a5fa", Hex(Blues.At(0)))
	}
}
