// Package raster draws charts into an RGBA image with fogleman/gg.
package raster

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/midbel/pitchcharts"
)

var ErrEmpty = errors.New("surface has no backing store")

// Surface owns a backing store reallocated on every resize, the way a
// canvas drops its content when its width is assigned.
type Surface struct {
	dc     *gg.Context
	height float64
	ratio  float64
	fonts  *fontBook
}

func NewSurface() *Surface {
	return &Surface{
		ratio: 1,
		fonts: newFontBook(DefaultFaces),
	}
}

func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		s.dc = nil
		return
	}
	s.dc = gg.NewContext(width, height)
}

func (s *Surface) SetHeight(h float64) {
	s.height = h
}

// Height returns the CSS height last assigned to the surface.
func (s *Surface) Height() float64 {
	return s.height
}

func (s *Surface) Context() (charts.Context, bool) {
	if s.dc == nil {
		return nil, false
	}
	return canvas{Surface: s}, true
}

func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

func (s *Surface) Encode(w io.Writer) error {
	if s.dc == nil {
		return ErrEmpty
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) ContentType() string {
	return "image/png"
}

type canvas struct {
	*Surface
}

func (c canvas) Measure(str string, f charts.Font) float64 {
	return c.fonts.measure(str, f)
}

func (c canvas) Scale(ratio float64) {
	c.ratio = ratio
	c.dc.Identity()
	c.dc.Scale(ratio, ratio)
}

func (c canvas) Clear(r charts.Rect) {
	img, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	rect := image.Rect(
		int(math.Floor(r.X*c.ratio)),
		int(math.Floor(r.Y*c.ratio)),
		int(math.Ceil(r.Right()*c.ratio)),
		int(math.Ceil(r.Bottom()*c.ratio)),
	)
	draw.Draw(img, rect.Intersect(img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

func (c canvas) FillRect(r charts.Rect, p charts.Paint) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.SetFillStyle(c.pattern(p))
	c.dc.Fill()
}

func (c canvas) FillRoundRect(r charts.Rect, rd charts.Radii, p charts.Paint) {
	c.roundRect(r, rd)
	c.dc.SetFillStyle(c.pattern(p))
	c.dc.Fill()
}

// FillGlow approximates a blurred shadow with layers of translucent halos,
// the outermost being the most transparent.
func (c canvas) FillGlow(r charts.Rect, rd charts.Radii, p charts.Paint, halo color.NRGBA, blur float64) {
	steps := int(math.Ceil(blur / 3))
	if steps < 1 {
		steps = 1
	}
	alpha := charts.Opacity(halo) / float64(steps+1)
	for i := steps; i >= 1; i-- {
		grow := blur * float64(i) / float64(steps)
		c.roundRect(r.Expand(grow), rd.Grow(grow))
		c.dc.SetFillStyle(gg.NewSolidPattern(charts.WithAlpha(halo, alpha)))
		c.dc.Fill()
	}
	c.FillRoundRect(r, rd, p)
}

func (c canvas) StrokeLine(from, to charts.Point, p charts.Paint, width float64) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.SetLineWidth(width * c.ratio)
	c.dc.SetStrokeStyle(c.pattern(p))
	c.dc.Stroke()
}

func (c canvas) FillText(str string, at charts.Point, f charts.Font, p charts.Paint, a charts.Anchor) {
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.Identity()
	c.dc.SetFontFace(c.fonts.face(f, c.ratio))
	var (
		w, h = c.dc.MeasureString(str)
		x    = at.X * c.ratio
		y    = at.Y * c.ratio
	)
	if a.Align == charts.AlignCenter {
		x -= w / 2
	}
	switch a.Baseline {
	case charts.BaselineMiddle:
		y += h / 2
	case charts.BaselineTop:
		y += h
	}
	c.dc.SetColor(p.At(at.X, at.Y))
	c.dc.DrawString(str, x, y)
}

func (c canvas) roundRect(r charts.Rect, rd charts.Radii) {
	var (
		x0 = r.X
		y0 = r.Y
		x1 = r.Right()
		y1 = r.Bottom()
	)
	c.dc.NewSubPath()
	c.dc.MoveTo(x0+rd.TopLeft, y0)
	c.dc.LineTo(x1-rd.TopRight, y0)
	if rd.TopRight > 0 {
		c.dc.DrawArc(x1-rd.TopRight, y0+rd.TopRight, rd.TopRight, gg.Radians(270), gg.Radians(360))
	}
	c.dc.LineTo(x1, y1-rd.BottomRight)
	if rd.BottomRight > 0 {
		c.dc.DrawArc(x1-rd.BottomRight, y1-rd.BottomRight, rd.BottomRight, 0, gg.Radians(90))
	}
	c.dc.LineTo(x0+rd.BottomLeft, y1)
	if rd.BottomLeft > 0 {
		c.dc.DrawArc(x0+rd.BottomLeft, y1-rd.BottomLeft, rd.BottomLeft, gg.Radians(90), gg.Radians(180))
	}
	c.dc.LineTo(x0, y0+rd.TopLeft)
	if rd.TopLeft > 0 {
		c.dc.DrawArc(x0+rd.TopLeft, y0+rd.TopLeft, rd.TopLeft, gg.Radians(180), gg.Radians(270))
	}
	c.dc.ClosePath()
}

// pattern converts p to a gg pattern. Gradients are evaluated by gg in
// device pixels, so their ends are scaled by the pixel ratio.
func (c canvas) pattern(p charts.Paint) gg.Pattern {
	switch p := p.(type) {
	case charts.Solid:
		return gg.NewSolidPattern(color.NRGBA(p))
	case charts.LinearGradient:
		g := gg.NewLinearGradient(p.From.X*c.ratio, p.From.Y*c.ratio, p.To.X*c.ratio, p.To.Y*c.ratio)
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	default:
		return gg.NewSolidPattern(p.At(0, 0))
	}
}
