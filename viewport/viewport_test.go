package viewport

import (
	"testing"
)

func TestWindowResize(t *testing.T) {
	var (
		win   = New(800, 2)
		calls []float64
	)
	release := win.OnResize(func() {
		calls = append(calls, win.Width())
	})
	win.Resize(400, 0)
	if win.PixelRatio() != 2 {
		t.Errorf("ratio = %f, want 2", win.PixelRatio())
	}
	release()
	release()
	win.Resize(600, 1)

	if len(calls) != 1 || calls[0] != 400 {
		t.Errorf("subscriber called with %v, want [400]", calls)
	}
	if win.Listeners() != 0 {
		t.Errorf("got %d listeners, want 0", win.Listeners())
	}
}

func TestWindowOrder(t *testing.T) {
	var (
		win   = New(800, 1)
		order []int
	)
	for i := 0; i < 12; i++ {
		win.OnResize(func() {
			order = append(order, i)
		})
	}
	win.Resize(700, 1)
	for i, v := range order {
		if i != v {
			t.Fatalf("subscribers called out of order: %v", order)
		}
	}
}
