// Package vector draws charts as SVG documents with midbel/svg.
//
// Gradients are not emitted as paint servers: every shape is filled with the
// color that its gradient has at the shape center. Text is measured with a
// fixed advance per glyph since no font is loaded.
package vector

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/midbel/svg"

	"github.com/midbel/pitchcharts"
)

var ErrEmpty = errors.New("surface has no document")

const (
	regularAdvance = 0.55
	boldAdvance    = 0.6
)

type Surface struct {
	width  int
	height int
	css    float64
	ratio  float64

	elems []svg.Element
}

func NewSurface() *Surface {
	return &Surface{
		ratio: 1,
	}
}

func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
	s.elems = s.elems[:0]
}

func (s *Surface) SetHeight(h float64) {
	s.css = h
}

func (s *Surface) Context() (charts.Context, bool) {
	if s.width <= 0 || s.height <= 0 {
		return nil, false
	}
	return document{Surface: s}, true
}

// Len returns the number of elements drawn since the last clear.
func (s *Surface) Len() int {
	return len(s.elems)
}

func (s *Surface) Encode(w io.Writer) error {
	if s.width <= 0 || s.height <= 0 {
		return ErrEmpty
	}
	var (
		width  = float64(s.width) / s.ratio
		height = float64(s.height) / s.ratio
	)
	el := svg.NewSVG()
	el.Dim = svg.NewDim(width, height)
	el.OmitProlog = true
	for i := range s.elems {
		el.Append(s.elems[i])
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *Surface) ContentType() string {
	return "image/svg+xml"
}

type document struct {
	*Surface
}

func (d document) Measure(str string, f charts.Font) float64 {
	adv := regularAdvance
	if f.Bold() {
		adv = boldAdvance
	}
	return float64(utf8.RuneCountInString(str)) * f.Size * adv
}

// Scale records the ratio between device pixels and user units. The document
// is written in user units so nothing is transformed.
func (d document) Scale(ratio float64) {
	if ratio > 0 {
		d.ratio = ratio
	}
}

// Clear drops every element drawn so far. Charts always clear the whole
// surface before a frame.
func (d document) Clear(_ charts.Rect) {
	d.elems = d.elems[:0]
}

func (d document) FillRect(r charts.Rect, p charts.Paint) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = fillAt(p, r.Center())
	d.elems = append(d.elems, el.AsElement())
}

func (d document) FillRoundRect(r charts.Rect, rd charts.Radii, p charts.Paint) {
	var (
		pat svg.Path
		x0  = r.X
		y0  = r.Y
		x1  = r.Right()
		y1  = r.Bottom()
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = fillAt(p, r.Center())

	pat.AbsMoveTo(svg.NewPos(x0+rd.TopLeft, y0))
	pat.AbsLineTo(svg.NewPos(x1-rd.TopRight, y0))
	if rd.TopRight > 0 {
		pat.AbsArcTo(svg.NewPos(x1, y0+rd.TopRight), rd.TopRight, rd.TopRight, 0, false, true)
	}
	pat.AbsLineTo(svg.NewPos(x1, y1-rd.BottomRight))
	if rd.BottomRight > 0 {
		pat.AbsArcTo(svg.NewPos(x1-rd.BottomRight, y1), rd.BottomRight, rd.BottomRight, 0, false, true)
	}
	pat.AbsLineTo(svg.NewPos(x0+rd.BottomLeft, y1))
	if rd.BottomLeft > 0 {
		pat.AbsArcTo(svg.NewPos(x0, y1-rd.BottomLeft), rd.BottomLeft, rd.BottomLeft, 0, false, true)
	}
	pat.AbsLineTo(svg.NewPos(x0, y0+rd.TopLeft))
	if rd.TopLeft > 0 {
		pat.AbsArcTo(svg.NewPos(x0+rd.TopLeft, y0), rd.TopLeft, rd.TopLeft, 0, false, true)
	}
	pat.ClosePath()
	d.elems = append(d.elems, pat.AsElement())
}

func (d document) StrokeLine(from, to charts.Point, p charts.Paint, width float64) {
	var (
		mid = charts.NewPoint((from.X+to.X)/2, (from.Y+to.Y)/2)
		col = p.At(mid.X, mid.Y)
	)
	li := svg.NewLine(svg.NewPos(from.X, from.Y), svg.NewPos(to.X, to.Y))
	li.Stroke = svg.NewStroke(charts.Hex(col), width)
	li.Stroke.Opacity = charts.Opacity(col)
	d.elems = append(d.elems, li.AsElement())
}

func (d document) FillText(str string, at charts.Point, f charts.Font, p charts.Paint, a charts.Anchor) {
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(at.X, at.Y)
	txt.Font = svg.NewFont(f.Size)
	txt.Font.Fill = ""
	if f.Weight > 0 {
		txt.Font.Weight = strconv.Itoa(f.Weight)
	}
	txt.Fill = fillAt(p, at)
	txt.Anchor = "middle"
	if a.Align == charts.AlignStart {
		txt.Anchor = "start"
	}
	txt.Baseline = "middle"
	if a.Baseline == charts.BaselineTop {
		txt.Baseline = "hanging"
	}
	d.elems = append(d.elems, txt.AsElement())
}

func fillAt(p charts.Paint, at charts.Point) svg.Fill {
	col := p.At(at.X, at.Y)
	fill := svg.NewFill(charts.Hex(col))
	fill.Opacity = charts.Opacity(col)
	return fill
}
