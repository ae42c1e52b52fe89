package charts

import (
	"image/color"
)

// fillShape draws a rounded rectangle when the context supports it and a
// plain rectangle otherwise.
func fillShape(ctx Context, r Rect, rd Radii, p Paint) {
	if r.Empty() {
		return
	}
	rr, ok := ctx.(RoundRecter)
	if !ok || rd.Zero() {
		ctx.FillRect(r, p)
		return
	}
	rr.FillRoundRect(r, rd.Clamp(r), p)
}

// fillGlowShape draws the shape with a blurred halo. Contexts without blur
// support get the bare shape.
func fillGlowShape(ctx Context, r Rect, rd Radii, p Paint, c color.NRGBA, blur float64) {
	if r.Empty() {
		return
	}
	gw, ok := ctx.(Glower)
	if !ok || blur <= 0 || c.A == 0 {
		fillShape(ctx, r, rd, p)
		return
	}
	if _, ok := ctx.(RoundRecter); !ok {
		rd = Radii{}
	}
	gw.FillGlow(r, rd.Clamp(r), p, c, blur)
}
