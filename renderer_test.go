package charts_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/canvas/vector"
	"github.com/midbel/pitchcharts/viewport"
)

func mount(t *testing.T, win *viewport.Window, frames *[]charts.Geometry) *charts.Renderer {
	t.Helper()
	r := charts.NewRenderer(charts.MarketChart(), vector.NewSurface(),
		charts.WithContainer(win),
		charts.WithDisplay(win),
		charts.WithViewport(win),
		charts.WithDrawHook(func(g charts.Geometry) {
			*frames = append(*frames, g)
		}),
	)
	if err := r.Mount(); err != nil {
		t.Fatalf("Mount() failed: %s", err)
	}
	return r
}

func TestRendererResize(t *testing.T) {
	var (
		frames []charts.Geometry
		win    = viewport.New(750, 1)
		r      = mount(t, win, &frames)
	)
	defer r.Close()

	win.Resize(320, 2)
	win.Resize(750, 1)

	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	if w := frames[1].Surface.CSSWidth; w != 320 {
		t.Errorf("second frame width = %f, want 320", w)
	}
	if diff := cmp.Diff(frames[0], frames[2], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("geometry differs after resizing back (-first +last):\n%s", diff)
	}
}

func TestRendererClose(t *testing.T) {
	var (
		frames []charts.Geometry
		win    = viewport.New(750, 1)
		r      = mount(t, win, &frames)
	)
	if win.Listeners() != 1 {
		t.Fatalf("got %d listeners after mount, want 1", win.Listeners())
	}
	if err := r.Mount(); err != nil {
		t.Fatalf("second Mount() failed: %s", err)
	}
	if win.Listeners() != 1 {
		t.Errorf("second mount added a listener")
	}
	r.Close()
	r.Close()
	if win.Listeners() != 0 {
		t.Errorf("got %d listeners after close, want 0", win.Listeners())
	}
	win.Resize(500, 1)
	if len(frames) != 1 {
		t.Errorf("renderer drew %d frames, want 1", len(frames))
	}
	if _, ok := r.Draw(); ok {
		t.Errorf("Draw() succeeded after close")
	}
	if err := r.Mount(); !errors.Is(err, charts.ErrClosed) {
		t.Errorf("Mount() after close error = %v, want %v", err, charts.ErrClosed)
	}
}

func TestRendererRemount(t *testing.T) {
	var (
		win    = viewport.New(750, 1)
		frames []charts.Geometry
	)
	for i := 0; i < 3; i++ {
		r := mount(t, win, &frames)
		r.Close()
	}
	if win.Listeners() != 0 {
		t.Errorf("listeners leaked across remounts: %d", win.Listeners())
	}
}
