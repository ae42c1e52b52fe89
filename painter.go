package charts

// Painter draws a laid out chart. Every call redraws the whole surface.
type Painter struct {
	Theme Theme
}

func (p Painter) Paint(ctx Context, g Geometry) {
	var (
		width  = g.Surface.CSSWidth
		height = g.Surface.CSSHeight
		full   = NewRect(0, 0, width, height)
	)
	ctx.Clear(full)
	if p.Theme.Background.A > 0 {
		ctx.FillRect(full, Solid(p.Theme.Background))
	}
	p.paintAxis(ctx, g.Axis)
	for _, b := range g.Bars {
		p.paintBar(ctx, b, height)
	}
	for _, v := range g.Values {
		p.paintValue(ctx, v)
	}
	text := Solid(p.Theme.Text.Category)
	for _, c := range g.Labels {
		for _, line := range c.Lines {
			ctx.FillText(line.Text, line.At, c.Font, text, AnchorTop)
		}
	}
	for _, i := range g.Legend {
		p.paintLegend(ctx, i, height)
	}
}

func (p Painter) paintBar(ctx Context, b Bar, height float64) {
	style := p.Theme.series(b.Series)
	if len(style.Shadow) > 0 {
		shadow := b.Rect.Translate(style.ShadowOffset, style.ShadowOffset)
		if !shadow.Empty() {
			ctx.FillRect(shadow, verticalGradient(style.Shadow, height))
		}
	}
	var (
		fill  = verticalGradient(style.Fill, height)
		radii = RoundTop(style.Radius)
	)
	fillGlowShape(ctx, b.Rect, radii, fill, style.Glow.At(b.Index), style.GlowBlur)
}

func (p Painter) paintValue(ctx Context, v ValueLabel) {
	style := p.Theme.series(v.Series)
	fillShape(ctx, v.Pill, Uniform(v.Pill.H/2), Solid(style.Pill))
	ctx.FillText(v.Text, v.At, v.Font, Solid(p.Theme.Text.Value), AnchorCenter)
}

func (p Painter) paintLegend(ctx Context, i LegendItem, height float64) {
	style := p.Theme.series(i.Series)
	fillShape(ctx, i.Pill, Uniform(i.Pill.H/2), Solid(p.Theme.Legend.Pill))
	fillShape(ctx, i.Swatch, Uniform(p.Theme.Legend.Radius), verticalGradient(style.Fill, height))
	ctx.FillText(i.Text, i.At, i.Font, Solid(p.Theme.Text.Legend), AnchorStart)
}

func verticalGradient(stops []Stop, height float64) Paint {
	if len(stops) == 1 {
		return Solid(stops[0].Color)
	}
	return NewLinearGradient(NewPoint(0, 0), NewPoint(0, height), stops...)
}
