package charts

import (
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Rect is an axis aligned rectangle in CSS pixel space. X and Y are the
// coordinates of its top left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() Point {
	return NewPoint(r.X+r.W/2, r.Y+r.H/2)
}

func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Expand grows the rectangle by n on every side.
func (r Rect) Expand(n float64) Rect {
	r.X -= n
	r.Y -= n
	r.W += 2 * n
	r.H += 2 * n
	return r
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() && r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Radii are the corner radii of a rounded rectangle, clockwise from the top
// left corner.
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

func Uniform(r float64) Radii {
	return Radii{
		TopLeft:     r,
		TopRight:    r,
		BottomRight: r,
		BottomLeft:  r,
	}
}

func RoundTop(r float64) Radii {
	return Radii{
		TopLeft:  r,
		TopRight: r,
	}
}

func (r Radii) Zero() bool {
	return r.TopLeft <= 0 && r.TopRight <= 0 && r.BottomRight <= 0 && r.BottomLeft <= 0
}

// Clamp limits every radius to half of the smallest side of rect.
func (r Radii) Clamp(rect Rect) Radii {
	limit := math.Min(rect.W, rect.H) / 2
	if limit < 0 {
		limit = 0
	}
	clamp := func(v float64) float64 {
		return math.Max(0, math.Min(v, limit))
	}
	return Radii{
		TopLeft:     clamp(r.TopLeft),
		TopRight:    clamp(r.TopRight),
		BottomRight: clamp(r.BottomRight),
		BottomLeft:  clamp(r.BottomLeft),
	}
}

func (r Radii) Grow(n float64) Radii {
	grow := func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return v + n
	}
	return Radii{
		TopLeft:     grow(r.TopLeft),
		TopRight:    grow(r.TopRight),
		BottomRight: grow(r.BottomRight),
		BottomLeft:  grow(r.BottomLeft),
	}
}
