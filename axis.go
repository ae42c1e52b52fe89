package charts

// Padding is the space reserved around the drawing area of a chart.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Painter) paintAxis(ctx Context, a Axis) {
	grid := Solid(p.Theme.Grid.Color)
	for _, y := range a.Gridlines {
		ctx.StrokeLine(NewPoint(a.Left(), y), NewPoint(a.Right(), y), grid, p.Theme.Grid.Width)
	}
	for _, d := range domainLines(a) {
		ctx.StrokeLine(d[0], d[1], Solid(p.Theme.Axis.Color), p.Theme.Axis.Width)
	}
}

// domainLines returns the vertical and the horizontal axis lines, both
// starting from the origin of the chart.
func domainLines(a Axis) [][2]Point {
	origin := a.Origin()
	return [][2]Point{
		{NewPoint(a.Left(), a.Ceiling), origin},
		{origin, NewPoint(a.Right(), a.Bottom())},
	}
}
