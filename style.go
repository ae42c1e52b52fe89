package charts

import (
	"image/color"
)

// SeriesStyle describes how the bars of one series are filled. Gradients
// run vertically over the whole height of the surface.
type SeriesStyle struct {
	Fill   []Stop
	Radius float64
	// Shadow, when set, is drawn first, offset by ShadowOffset in both
	// directions.
	Shadow       []Stop
	ShadowOffset float64
	// Glow colors cycle over the bars of the series.
	Glow     Palette
	GlowBlur float64
	Pill     color.NRGBA
}

type Theme struct {
	Background color.NRGBA

	Grid struct {
		Color color.NRGBA
		Width float64
	}
	Axis struct {
		Color color.NRGBA
		Width float64
	}
	Text struct {
		Value    color.NRGBA
		Category color.NRGBA
		Legend   color.NRGBA
	}
	Legend struct {
		Pill   color.NRGBA
		Radius float64
	}
	Series []SeriesStyle
}

func (t Theme) series(i int) SeriesStyle {
	if len(t.Series) == 0 {
		return SeriesStyle{}
	}
	return t.Series[i%len(t.Series)]
}

func baseTheme() Theme {
	var t Theme
	t.Grid.Color = MustColor("rgba(255, 255, 255, 0.1)")
	t.Grid.Width = 1
	t.Axis.Color = MustColor("rgba(255, 255, 255, 0.3)")
	t.Axis.Width = 2
	t.Text.Value = MustColor("#ffffff")
	t.Text.Category = MustColor("#f3f4f6")
	t.Text.Legend = MustColor("#ffffff")
	t.Legend.Pill = MustColor("rgba(0, 0, 0, 0.7)")
	t.Legend.Radius = 3
	return t
}

var (
	blueToGreen = []Stop{
		NewStop(0, "#60a5fa"),
		NewStop(0.5, "#3b82f6"),
		NewStop(1, "#22c55e"),
	}
	blueToGreenShadow = []Stop{
		NewStop(0, "rgba(96, 165, 250, 0.3)"),
		NewStop(1, "rgba(34, 197, 94, 0.3)"),
	}
	redFade = []Stop{
		NewStop(0, "rgba(239, 68, 68, 0.7)"),
		NewStop(1, "rgba(185, 28, 28, 0.7)"),
	}
)

func MarketTheme() Theme {
	t := baseTheme()
	t.Series = []SeriesStyle{
		{
			Fill:         blueToGreen,
			Radius:       8,
			Shadow:       blueToGreenShadow,
			ShadowOffset: 4,
			Glow:         Blues,
			GlowBlur:     15,
			Pill:         MustColor("rgba(0, 0, 0, 0.8)"),
		},
	}
	return t
}

func ComparisonTheme() Theme {
	t := baseTheme()
	t.Series = []SeriesStyle{
		{
			Fill:     redFade,
			Radius:   6,
			Glow:     Palette{MustColor("rgba(239, 68, 68, 0.3)")},
			GlowBlur: 8,
			Pill:     MustColor("rgba(220, 38, 38, 0.9)"),
		},
		{
			Fill:     blueToGreen,
			Radius:   8,
			Glow:     Palette{MustColor("#3b82f6")},
			GlowBlur: 12,
			Pill:     MustColor("rgba(0, 0, 0, 0.85)"),
		},
	}
	return t
}
