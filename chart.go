package charts

// Chart is a fixed dataset together with its layout and its theme.
type Chart struct {
	Name        string
	Caption     string
	Description string

	Layout  Layout
	Painter Painter
}

// Draw sets up s for the current size of the container, lays the chart out
// and paints it. Nothing is drawn, and false is returned, when the surface
// offers no drawing context.
func (c Chart) Draw(s Surface, cont Container, d Display) (Geometry, bool) {
	geo, ctx, ok := Setup(s, cont, d, c.Aspect())
	if !ok {
		return Geometry{Surface: geo}, false
	}
	g := c.Layout.Layout(geo, ctx)
	c.Painter.Paint(ctx, g)
	return g, true
}

// Geometry lays the chart out without drawing it.
func (c Chart) Geometry(cont Container, d Display, m Measurer) Geometry {
	geo := Measure(cont, d, c.Aspect())
	return c.Layout.Layout(geo, m)
}

func (c Chart) Aspect() float64 {
	if c.Layout == nil {
		return 0
	}
	return c.Layout.Aspect()
}
