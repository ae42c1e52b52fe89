package charts

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

type Palette []color.NRGBA

func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{}
	}
	return p[i%len(p)]
}

var Blues = splitColorString("60a5fa3b82f622c55e")

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, MustColor("#"+str[i:i+6]))
	}
	return arr
}

// MustColor is like ParseColor but panics when str is not a valid color. It
// is meant for package level theme definitions.
func MustColor(str string) color.NRGBA {
	c, err := ParseColor(str)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor accepts the notations used by CSS style sheets: #rgb, #rrggbb,
// #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a) with a in [0, 1].
func ParseColor(str string) (color.NRGBA, error) {
	str = strings.TrimSpace(str)
	switch {
	case strings.HasPrefix(str, "#"):
		return parseHex(str[1:])
	case strings.HasPrefix(str, "rgba(") && strings.HasSuffix(str, ")"):
		return parseFunc(str[5:len(str)-1], 4)
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		return parseFunc(str[4:len(str)-1], 3)
	default:
		return color.NRGBA{}, fmt.Errorf("%s: %w", str, ErrInvalidColor)
	}
}

func parseHex(str string) (color.NRGBA, error) {
	if len(str) == 3 {
		str = string([]byte{str[0], str[0], str[1], str[1], str[2], str[2]})
	}
	if len(str) == 6 {
		str += "ff"
	}
	if len(str) != 8 {
		return color.NRGBA{}, fmt.Errorf("#%s: %w", str, ErrInvalidColor)
	}
	n, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("#%s: %w", str, ErrInvalidColor)
	}
	c := color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}
	return c, nil
}

func parseFunc(str string, want int) (color.NRGBA, error) {
	parts := strings.Split(str, ",")
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("%s: %w", str, ErrInvalidColor)
	}
	var vs [4]float64
	vs[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%s: %w", str, ErrInvalidColor)
		}
		vs[i] = f
	}
	c := color.NRGBA{
		R: channel(vs[0]),
		G: channel(vs[1]),
		B: channel(vs[2]),
		A: channel(vs[3] * 255),
	}
	return c, nil
}

func channel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

// Hex returns the #rrggbb notation of c, ignoring its alpha channel.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel of c in [0, 1].
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = channel(alpha * 255)
	return c
}

func lerp(a, b uint8, t float64) uint8 {
	return channel(float64(a) + (float64(b)-float64(a))*t)
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}
