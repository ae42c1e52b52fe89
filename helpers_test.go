package charts

import (
	"image/color"
	"unicode/utf8"
)

// advance measures text with a fixed advance per glyph, relative to the
// font size.
type advance float64

func (a advance) Measure(str string, f Font) float64 {
	return float64(utf8.RuneCountInString(str)) * f.Size * float64(a)
}

type call struct {
	Op   string
	Rect Rect
	Text string
}

// recorder is a context without any optional capability.
type recorder struct {
	advance
	scale float64
	calls []call
}

func (r *recorder) Scale(f float64) {
	r.scale = f
}

func (r *recorder) Clear(rect Rect) {
	r.calls = append(r.calls, call{Op: "clear", Rect: rect})
}

func (r *recorder) FillRect(rect Rect, _ Paint) {
	r.calls = append(r.calls, call{Op: "rect", Rect: rect})
}

func (r *recorder) StrokeLine(_, _ Point, _ Paint, _ float64) {
	r.calls = append(r.calls, call{Op: "line"})
}

func (r *recorder) FillText(str string, _ Point, _ Font, _ Paint, _ Anchor) {
	r.calls = append(r.calls, call{Op: "text", Text: str})
}

func (r *recorder) count(op string) int {
	var n int
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// roundRecorder supports rounded rectangles and glow.
type roundRecorder struct {
	recorder
}

func (r *roundRecorder) FillRoundRect(rect Rect, _ Radii, _ Paint) {
	r.calls = append(r.calls, call{Op: "round", Rect: rect})
}

func (r *roundRecorder) FillGlow(rect Rect, _ Radii, _ Paint, _ color.NRGBA, _ float64) {
	r.calls = append(r.calls, call{Op: "glow", Rect: rect})
}

// memSurface hands out the same context after every resize.
type memSurface struct {
	ctx     Context
	width   int
	height  int
	css     float64
	resizes int
}

func (s *memSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
}

func (s *memSurface) SetHeight(h float64) {
	s.css = h
}

func (s *memSurface) Context() (Context, bool) {
	if s.ctx == nil {
		return nil, false
	}
	return s.ctx, true
}

type width float64

func (w width) Width() float64 {
	return float64(w)
}

type ratio float64

func (r ratio) PixelRatio() float64 {
	return float64(r)
}
