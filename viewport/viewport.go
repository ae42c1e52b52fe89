// Package viewport provides an in-memory window: it owns a width and a
// device pixel ratio and notifies its subscribers synchronously every time
// it is resized.
package viewport

import (
	"sort"
	"sync"
)

type Window struct {
	mu    sync.Mutex
	width float64
	ratio float64
	next  int
	subs  map[int]func()
}

func New(width, ratio float64) *Window {
	return &Window{
		width: width,
		ratio: ratio,
		subs:  make(map[int]func()),
	}
}

func (w *Window) Width() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *Window) PixelRatio() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ratio
}

// OnResize registers fn and returns the function removing it. Calling the
// returned function more than once is harmless.
func (w *Window) OnResize(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	w.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs, id)
		})
	}
}

// Resize updates the window and calls every subscriber in registration
// order before returning. A ratio less or equal to zero keeps the current
// ratio.
func (w *Window) Resize(width, ratio float64) {
	w.mu.Lock()
	w.width = width
	if ratio > 0 {
		w.ratio = ratio
	}
	subs := w.listeners()
	w.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Listeners returns the number of active subscriptions.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

func (w *Window) listeners() []func() {
	ids := make([]int, 0, len(w.subs))
	for id := range w.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	list := make([]func(), 0, len(ids))
	for _, id := range ids {
		list = append(list, w.subs[id])
	}
	return list
}

// Width is a container with a fixed width.
type Width float64

func (w Width) Width() float64 {
	return float64(w)
}

// Ratio is a display with a fixed device pixel ratio.
type Ratio float64

func (r Ratio) PixelRatio() float64 {
	return float64(r)
}
