package charts

import (
	"testing"
)

func TestPaintFallbackWithoutCapabilities(t *testing.T) {
	var (
		rec = recorder{advance: 0.5}
		ch  = MarketChart()
		g   = layoutAt(ch, 750)
	)
	ch.Painter.Paint(&rec, g)

	if len(rec.calls) == 0 || rec.calls[0].Op != "clear" {
		t.Fatalf("paint does not start by clearing the surface")
	}
	if full := NewRect(0, 0, 750, 300); rec.calls[0].Rect != full {
		t.Errorf("cleared %v, want %v", rec.calls[0].Rect, full)
	}
	// shadow, bar and pill for each of the three bars
	if n := rec.count("rect"); n != 9 {
		t.Errorf("got %d rectangles, want 9", n)
	}
	// gridlines and both axis lines
	if n := rec.count("line"); n != 6 {
		t.Errorf("got %d lines, want 6", n)
	}
	// three values and three category labels, "Processing speed" wrapped
	if n := rec.count("text"); n != 7 {
		t.Errorf("got %d texts, want 7", n)
	}
}

func TestPaintWithCapabilities(t *testing.T) {
	var (
		rec = roundRecorder{recorder: recorder{advance: 0.5}}
		ch  = ComparisonChart()
		g   = layoutAt(ch, 750)
	)
	ch.Painter.Paint(&rec, g)

	if n := rec.count("glow"); n != len(g.Bars) {
		t.Errorf("got %d glowing bars, want %d", n, len(g.Bars))
	}
	// value pills plus legend pills and swatches
	if want, n := len(g.Values)+2*len(g.Legend), rec.count("round"); n != want {
		t.Errorf("got %d rounded shapes, want %d", n, want)
	}
	if n := rec.count("rect"); n != 0 {
		t.Errorf("got %d plain rectangles, want none", n)
	}
}

func TestFillShapeSkipsEmpty(t *testing.T) {
	rec := roundRecorder{}
	fillShape(&rec, NewRect(0, 0, 10, 0), Uniform(4), Solid(MustColor("#fff")))
	fillGlowShape(&rec, NewRect(0, 0, 0, 10), Uniform(4), Solid(MustColor("#fff")), MustColor("#000"), 4)
	if len(rec.calls) != 0 {
		t.Errorf("empty shapes drawn: %v", rec.calls)
	}
}

func TestRadiiClamp(t *testing.T) {
	r := Uniform(30).Clamp(NewRect(0, 0, 20, 50))
	if r != Uniform(10) {
		t.Errorf("Clamp() = %v, want %v", r, Uniform(10))
	}
}
