package charts

import (
	"math"
)

// MinWidth is the width used when the container can not be measured.
const MinWidth = 200.0

// Surface is a drawing target: a backing store of device pixels plus the
// context drawing into it.
type Surface interface {
	// Resize reallocates the backing store.
	Resize(int, int)
	// SetHeight sets the displayed height of the surface in CSS pixels.
	SetHeight(float64)
	// Context returns false when no drawing context is available.
	Context() (Context, bool)
}

type Container interface {
	Width() float64
}

type Display interface {
	PixelRatio() float64
}

type SurfaceGeometry struct {
	PixelWidth  int     `json:"pixel_width"`
	PixelHeight int     `json:"pixel_height"`
	PixelRatio  float64 `json:"dpr"`
	CSSWidth    float64 `json:"css_width"`
	CSSHeight   float64 `json:"css_height"`
}

// Measure computes the geometry of a surface laid out in container,
// displayed on d and keeping the given aspect ratio (height / width).
func Measure(c Container, d Display, aspect float64) SurfaceGeometry {
	var (
		width = MinWidth
		ratio = 1.0
	)
	if c != nil {
		if w := c.Width(); !math.IsNaN(w) && !math.IsInf(w, 0) && w > width {
			width = w
		}
	}
	if d != nil {
		if r := d.PixelRatio(); !math.IsNaN(r) && !math.IsInf(r, 0) && r > 0 {
			ratio = r
		}
	}
	height := width * aspect
	return SurfaceGeometry{
		PixelWidth:  int(math.Round(width * ratio)),
		PixelHeight: int(math.Round(height * ratio)),
		PixelRatio:  ratio,
		CSSWidth:    width,
		CSSHeight:   height,
	}
}

// Setup measures the container, resizes the surface accordingly and scales
// its context so that drawing happens in CSS pixels. It returns false when
// the surface has no context to draw with.
func Setup(s Surface, c Container, d Display, aspect float64) (SurfaceGeometry, Context, bool) {
	geo := Measure(c, d, aspect)
	s.SetHeight(geo.CSSHeight)
	s.Resize(geo.PixelWidth, geo.PixelHeight)

	ctx, ok := s.Context()
	if !ok || ctx == nil {
		return geo, nil, false
	}
	ctx.Scale(geo.PixelRatio)
	return geo, ctx, true
}
