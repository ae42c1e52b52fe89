package charts

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		description string
		container   Container
		display     Display
		aspect      float64
		want        SurfaceGeometry
	}{{
		description: "container and display",
		container:   width(750),
		display:     ratio(2),
		aspect:      0.4,
		want: SurfaceGeometry{
			PixelWidth:  1500,
			PixelHeight: 600,
			PixelRatio:  2,
			CSSWidth:    750,
			CSSHeight:   300,
		},
	}, {
		description: "zero width uses minimum width",
		container:   width(0),
		display:     ratio(1),
		aspect:      0.4,
		want: SurfaceGeometry{
			PixelWidth:  200,
			PixelHeight: 80,
			PixelRatio:  1,
			CSSWidth:    200,
			CSSHeight:   80,
		},
	}, {
		description: "nan width and missing display",
		container:   width(math.NaN()),
		aspect:      0.5,
		want: SurfaceGeometry{
			PixelWidth:  200,
			PixelHeight: 100,
			PixelRatio:  1,
			CSSWidth:    200,
			CSSHeight:   100,
		},
	}, {
		description: "invalid ratio defaults to one",
		container:   width(400),
		display:     ratio(-3),
		aspect:      0.4,
		want: SurfaceGeometry{
			PixelWidth:  400,
			PixelHeight: 160,
			PixelRatio:  1,
			CSSWidth:    400,
			CSSHeight:   160,
		},
	}, {
		description: "fractional ratio rounds backing store",
		container:   width(333),
		display:     ratio(1.5),
		aspect:      0.4,
		want: SurfaceGeometry{
			PixelWidth:  500,
			PixelHeight: 200,
			PixelRatio:  1.5,
			CSSWidth:    333,
			CSSHeight:   133.2,
		},
	}}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got := Measure(test.container, test.display, test.aspect)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Measure() = diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetupWithoutContext(t *testing.T) {
	var s memSurface
	geo, ctx, ok := Setup(&s, width(750), ratio(2), 0.4)
	if ok || ctx != nil {
		t.Fatalf("Setup() returned a context for a surface without one")
	}
	if s.width != geo.PixelWidth || s.height != geo.PixelHeight {
		t.Errorf("backing store = %dx%d, want %dx%d", s.width, s.height, geo.PixelWidth, geo.PixelHeight)
	}
}

func TestSetupScalesContext(t *testing.T) {
	rec := recorder{advance: 0.5}
	s := memSurface{ctx: &rec}
	geo, _, ok := Setup(&s, width(750), ratio(3), 0.4)
	if !ok {
		t.Fatalf("Setup() returned no context")
	}
	if rec.scale != 3 {
		t.Errorf("context scaled by %f, want 3", rec.scale)
	}
	if s.css != geo.CSSHeight {
		t.Errorf("css height = %f, want %f", s.css, geo.CSSHeight)
	}
}

func TestDrawWithoutContext(t *testing.T) {
	var s memSurface
	for _, ch := range []Chart{MarketChart(), ComparisonChart()} {
		g, ok := ch.Draw(&s, width(750), ratio(1))
		if ok {
			t.Errorf("%s: Draw() reported success without context", ch.Name)
		}
		if len(g.Bars) != 0 {
			t.Errorf("%s: Draw() laid out %d bars without context", ch.Name, len(g.Bars))
		}
	}
}
