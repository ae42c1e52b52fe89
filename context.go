package charts

import (
	"image/color"
	"math"
	"sort"
)

// Paint gives the color of a fill or a stroke at a point of the surface.
type Paint interface {
	At(x, y float64) color.NRGBA
}

type Solid color.NRGBA

func (s Solid) At(_, _ float64) color.NRGBA {
	return color.NRGBA(s)
}

type Stop struct {
	Offset float64
	Color  color.NRGBA
}

func NewStop(offset float64, str string) Stop {
	return Stop{
		Offset: offset,
		Color:  MustColor(str),
	}
}

// LinearGradient interpolates its stops along the segment From-To. Points
// are projected on the segment and clamped to its ends.
type LinearGradient struct {
	From  Point
	To    Point
	Stops []Stop
}

func NewLinearGradient(from, to Point, stops ...Stop) LinearGradient {
	stops = append([]Stop{}, stops...)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
	return LinearGradient{
		From:  from,
		To:    to,
		Stops: stops,
	}
}

func (g LinearGradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	var (
		dx = g.To.X - g.From.X
		dy = g.To.Y - g.From.Y
		ln = dx*dx + dy*dy
		t  float64
	)
	if ln > 0 {
		t = ((x-g.From.X)*dx + (y-g.From.Y)*dy) / ln
	}
	t = math.Max(0, math.Min(1, t))

	prev := g.Stops[0]
	if t <= prev.Offset {
		return prev.Color
	}
	for _, s := range g.Stops[1:] {
		if t <= s.Offset {
			span := s.Offset - prev.Offset
			if span <= 0 {
				return s.Color
			}
			return mix(prev.Color, s.Color, (t-prev.Offset)/span)
		}
		prev = s
	}
	return prev.Color
}

type Font struct {
	Size   float64 `json:"size"`
	Weight int     `json:"weight"`
}

func (f Font) Bold() bool {
	return f.Weight >= 600
}

type Align int

const (
	AlignCenter Align = iota
	AlignStart
)

type Baseline int

const (
	BaselineMiddle Baseline = iota
	BaselineTop
)

type Anchor struct {
	Align
	Baseline
}

var (
	AnchorCenter = Anchor{Align: AlignCenter, Baseline: BaselineMiddle}
	AnchorTop    = Anchor{Align: AlignCenter, Baseline: BaselineTop}
	AnchorStart  = Anchor{Align: AlignStart, Baseline: BaselineTop}
)

// Measurer returns the rendered width of a string in CSS pixels.
type Measurer interface {
	Measure(string, Font) float64
}

// Context is the set of drawing primitives every surface offers. All
// coordinates are in CSS pixels once Scale has been called with the device
// pixel ratio of the surface.
type Context interface {
	Measurer

	Scale(float64)
	Clear(Rect)
	FillRect(Rect, Paint)
	StrokeLine(Point, Point, Paint, float64)
	FillText(string, Point, Font, Paint, Anchor)
}

// RoundRecter is implemented by contexts with a native rounded rectangle
// primitive.
type RoundRecter interface {
	FillRoundRect(Rect, Radii, Paint)
}

// Glower is implemented by contexts able to fill a shape with a blurred
// halo of the given color around it.
type Glower interface {
	FillGlow(Rect, Radii, Paint, color.NRGBA, float64)
}
