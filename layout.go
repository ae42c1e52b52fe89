package charts

import (
	"math"
	"strings"

	"github.com/midbel/slices"
)

// FontRule derives a font size from the height of the surface: the size
// is Ratio * height rounded, but never below Min.
type FontRule struct {
	Ratio  float64
	Min    float64
	Weight int
}

func (f FontRule) Font(height float64) Font {
	return Font{
		Size:   math.Max(f.Min, math.Round(height*f.Ratio)),
		Weight: f.Weight,
	}
}

// PillRule places a value label above the top of its bar. The pill is
// Rise pixels above the bar top, Height pixels tall and PadX wider than the
// text on each side.
type PillRule struct {
	Rise   float64
	Height float64
	PadX   float64
}

func (p PillRule) place(center, top, width float64) (Rect, Point) {
	r := NewRect(center-width/2-p.PadX, top-p.Rise, width+2*p.PadX, p.Height)
	return r, NewPoint(center, r.Y+r.H/2)
}

type ValueRule struct {
	Font FontRule
	Pill PillRule
}

// LabelRule places category labels below the horizontal axis. Single is
// the offset of a label fitting on one line, First and Second the offsets
// of the two lines of a wrapped label. Slack widens (bar charts) or narrows
// (grouped charts) the space a label may use before it wraps.
type LabelRule struct {
	Font   FontRule
	Slack  float64
	Single float64
	First  float64
	Second float64
}

// LegendRule places the legend of grouped charts in the top padding band.
// Top, SwatchTop and TextTop are expressed as ratio of the padding.
type LegendRule struct {
	Font      FontRule
	Top       float64
	SwatchTop float64
	TextTop   float64
	Height    float64
	MinWidth  float64
	Inset     float64
	Gap       float64
	SwatchW   float64
	SwatchH   float64
}

// Config holds every constant of a chart layout.
type Config struct {
	AspectRatio  float64
	PaddingRatio float64
	TopFactor    float64
	BottomFactor float64
	AxisTop      float64
	Gridlines    int

	MaxBarWidth float64
	// BarSpread is used by bar charts: bars never exceed the inner width
	// divided by BarSpread times the number of bars.
	BarSpread float64
	// BarRatio, GapRatio and MaxPairGap are used by grouped charts and are
	// relative to the width of a category.
	BarRatio   float64
	GapRatio   float64
	MaxPairGap float64

	Value  ValueRule
	Label  LabelRule
	Legend LegendRule
}

func MarketConfig() Config {
	return Config{
		AspectRatio:  0.4,
		PaddingRatio: 0.15,
		TopFactor:    1,
		BottomFactor: 1.5,
		AxisTop:      0.8,
		Gridlines:    4,
		MaxBarWidth:  90,
		BarSpread:    1.8,
		Value: ValueRule{
			Font: FontRule{Ratio: 0.06, Min: 16, Weight: 700},
			Pill: PillRule{Rise: 40, Height: 28, PadX: 10},
		},
		Label: LabelRule{
			Font:   FontRule{Ratio: 0.05, Min: 13, Weight: 600},
			Slack:  20,
			Single: 18,
			First:  12,
			Second: 30,
		},
	}
}

func ComparisonConfig() Config {
	return Config{
		AspectRatio:  0.4,
		PaddingRatio: 0.15,
		TopFactor:    1,
		BottomFactor: 1.5,
		AxisTop:      0.8,
		Gridlines:    5,
		MaxBarWidth:  45,
		BarRatio:     0.35,
		GapRatio:     0.15,
		MaxPairGap:   20,
		Value: ValueRule{
			Font: FontRule{Ratio: 0.05, Min: 13, Weight: 700},
			Pill: PillRule{Rise: 45, Height: 24, PadX: 8},
		},
		Label: LabelRule{
			Font:   FontRule{Ratio: 0.045, Min: 12, Weight: 600},
			Slack:  20,
			Single: 18,
			First:  12,
			Second: 28,
		},
		Legend: LegendRule{
			Font:      FontRule{Ratio: 0.04, Min: 12, Weight: 600},
			Top:       0.5,
			SwatchTop: 0.6,
			TextTop:   0.7,
			Height:    25,
			MinWidth:  120,
			Inset:     5,
			Gap:       8,
			SwatchW:   16,
			SwatchH:   12,
		},
	}
}

func (c Config) axis(width, height float64) Axis {
	pad := math.Round(math.Min(width, height) * c.PaddingRatio)
	a := Axis{
		Padding: Padding{
			Top:    pad * c.TopFactor,
			Right:  pad,
			Bottom: pad * c.BottomFactor,
			Left:   pad,
		},
		Width:   width,
		Height:  height,
		Pad:     pad,
		Ceiling: pad * c.AxisTop,
	}
	values := NewLinearScale(0, a.DrawingHeight(), NewRange(0, a.DrawingHeight())).Ticks(c.Gridlines)
	for _, v := range slices.Rest(values) {
		a.Gridlines = append(a.Gridlines, a.Bottom()-v)
	}
	return a
}

// Axis is the frame of a chart: the padding around the drawing area and
// the vertical position of every gridline.
type Axis struct {
	Padding

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Pad    float64 `json:"pad"`
	// Ceiling is the upper end of the vertical axis line.
	Ceiling   float64   `json:"ceiling"`
	Gridlines []float64 `json:"gridlines"`
}

func (a Axis) Left() float64 {
	return a.Padding.Left
}

func (a Axis) Right() float64 {
	return a.Width - a.Padding.Right
}

func (a Axis) Bottom() float64 {
	return a.Height - a.Padding.Bottom
}

func (a Axis) Origin() Point {
	return NewPoint(a.Left(), a.Bottom())
}

func (a Axis) DrawingWidth() float64 {
	return a.Width - a.Padding.Horizontal()
}

func (a Axis) DrawingHeight() float64 {
	return a.Height - a.Padding.Vertical()
}

type Bar struct {
	Rect

	Series int     `json:"series"`
	Index  int     `json:"index"`
	Value  float64 `json:"value"`
}

type ValueLabel struct {
	Text   string `json:"text"`
	At     Point  `json:"at"`
	Pill   Rect   `json:"pill"`
	Font   Font   `json:"font"`
	Series int    `json:"series"`
}

type TextLine struct {
	Text string `json:"text"`
	At   Point  `json:"at"`
}

type CategoryLabel struct {
	Lines []TextLine `json:"lines"`
	Font  Font       `json:"font"`
}

type LegendItem struct {
	Text   string `json:"text"`
	At     Point  `json:"at"`
	Pill   Rect   `json:"pill"`
	Swatch Rect   `json:"swatch"`
	Font   Font   `json:"font"`
	Series int    `json:"series"`
}

// Geometry is everything a painter needs to draw a chart, in CSS pixels.
type Geometry struct {
	Surface SurfaceGeometry `json:"surface"`
	Axis    Axis            `json:"axis"`
	Bars    []Bar           `json:"bars"`
	Values  []ValueLabel    `json:"values"`
	Labels  []CategoryLabel `json:"labels"`
	Legend  []LegendItem    `json:"legend"`
}

type Layout interface {
	Aspect() float64
	Layout(SurfaceGeometry, Measurer) Geometry
}

// BarLayout lays out one bar per entry of a dataset, each bar measured
// against its own scale.
type BarLayout struct {
	Config
	Data Dataset
}

func (b BarLayout) Aspect() float64 {
	return b.AspectRatio
}

func (b BarLayout) Layout(geo SurfaceGeometry, m Measurer) Geometry {
	var (
		axis  = b.axis(geo.CSSWidth, geo.CSSHeight)
		count = float64(b.Data.Len())
		inner = axis.DrawingWidth()
		width = math.Min(b.MaxBarWidth, inner/(count*b.BarSpread))
		gap   = (inner - width*count) / math.Max(count-1, 1)
		vfont = b.Value.Font.Font(geo.CSSHeight)
		lfont = b.Label.Font.Font(geo.CSSHeight)
		res   = Geometry{
			Surface: geo,
			Axis:    axis,
		}
	)
	for i, e := range b.Data.Entries() {
		var (
			x      = axis.Left() + float64(i)*(width+gap)
			height = scaleHeight(e, axis.DrawingHeight())
			bar    = Bar{
				Rect:  NewRect(x, axis.Bottom()-height, width, height),
				Index: i,
				Value: e.Value,
			}
		)
		res.Bars = append(res.Bars, bar)
		res.Values = append(res.Values, b.valueLabel(e.Text(), bar, vfont, m))

		center := x + width/2
		res.Labels = append(res.Labels, b.categoryLabel(e.Label, center, width+b.Label.Slack, axis.Bottom(), lfont, m))
	}
	return res
}

// GroupLayout lays out one category per group of a comparison, with one
// bar per series centered within the width of its category.
type GroupLayout struct {
	Config
	Data Comparison
}

func (g GroupLayout) Aspect() float64 {
	return g.AspectRatio
}

func (g GroupLayout) Layout(geo SurfaceGeometry, m Measurer) Geometry {
	var (
		axis   = g.axis(geo.CSSWidth, geo.CSSHeight)
		band   = NewBandScale(g.Data.Labels(), NewRange(axis.Left(), axis.Right()))
		space  = band.Width()
		width  = math.Min(g.MaxBarWidth, space*g.BarRatio)
		gap    = math.Min(g.MaxPairGap, space*g.GapRatio)
		series = len(g.Data.Series())
		total  = float64(series)*width + float64(series-1)*gap
		vfont  = g.Value.Font.Font(geo.CSSHeight)
		lfont  = g.Label.Font.Font(geo.CSSHeight)
		res    = Geometry{
			Surface: geo,
			Axis:    axis,
		}
	)
	for i, label := range g.Data.Labels() {
		center := band.Center(i)
		for s := 0; s < series; s++ {
			var (
				e      = g.Data.Entry(i, s)
				x      = center - total/2 + float64(s)*(width+gap)
				height = scaleHeight(e, axis.DrawingHeight())
				bar    = Bar{
					Rect:   NewRect(x, axis.Bottom()-height, width, height),
					Series: s,
					Index:  i,
					Value:  e.Value,
				}
			)
			res.Bars = append(res.Bars, bar)
			res.Values = append(res.Values, g.valueLabel(e.Text(), bar, vfont, m))
		}
		res.Labels = append(res.Labels, g.categoryLabel(label, center, space-g.Label.Slack, axis.Bottom(), lfont, m))
	}
	res.Legend = g.legend(axis, g.Data.Series(), g.Legend.Font.Font(geo.CSSHeight), m)
	return res
}

func (c Config) valueLabel(text string, bar Bar, f Font, m Measurer) ValueLabel {
	pill, at := c.Value.Pill.place(bar.Center().X, bar.Y, m.Measure(text, f))
	return ValueLabel{
		Text:   text,
		At:     at,
		Pill:   pill,
		Font:   f,
		Series: bar.Series,
	}
}

func (c Config) categoryLabel(label string, center, allowed, bottom float64, f Font, m Measurer) CategoryLabel {
	cl := CategoryLabel{
		Font: f,
	}
	lines := WrapLabel(label, allowed, f, m)
	if len(lines) == 1 {
		cl.Lines = append(cl.Lines, TextLine{
			Text: slices.Fst(lines),
			At:   NewPoint(center, bottom+c.Label.Single),
		})
		return cl
	}
	cl.Lines = append(cl.Lines, TextLine{
		Text: slices.Fst(lines),
		At:   NewPoint(center, bottom+c.Label.First),
	})
	cl.Lines = append(cl.Lines, TextLine{
		Text: slices.Lst(lines),
		At:   NewPoint(center, bottom+c.Label.Second),
	})
	return cl
}

func (c Config) legend(axis Axis, series []string, f Font, m Measurer) []LegendItem {
	var (
		rule  = c.Legend
		items []LegendItem
	)
	for i, name := range series {
		var (
			tw    = m.Measure(name, f)
			width = math.Max(rule.MinWidth, 3*rule.Inset+rule.SwatchW+rule.Gap+tw)
			left  = axis.Pad - rule.Inset
			right = axis.Width - axis.Pad - width
			x     = left
		)
		if n := len(series); n > 1 {
			x = left + (right-left)*float64(i)/float64(n-1)
		}
		var (
			pill   = NewRect(x, axis.Pad*rule.Top, width, rule.Height)
			swatch = NewRect(x+rule.Inset, axis.Pad*rule.SwatchTop, rule.SwatchW, rule.SwatchH)
			at     = NewPoint(swatch.Right()+rule.Gap, axis.Pad*rule.TextTop)
		)
		items = append(items, LegendItem{
			Text:   name,
			At:     at,
			Pill:   pill,
			Swatch: swatch,
			Font:   f,
			Series: i,
		})
	}
	return items
}

// WrapLabel splits label after its first word when it has more than one
// word and its rendered width exceeds allowed.
func WrapLabel(label string, allowed float64, f Font, m Measurer) []string {
	first, rest, ok := strings.Cut(label, " ")
	if !ok || rest == "" || m.Measure(label, f) <= allowed {
		return []string{label}
	}
	return []string{first, rest}
}

func scaleHeight(e Entry, height float64) float64 {
	sc := NewLinearScale(0, e.ScaleMax, NewRange(0, height))
	return math.Max(0, sc.Scale(e.Value))
}
