package charts

import (
	"io"
	"log/slog"
	"sync"
)

// Viewport notifies its subscribers every time it is resized. The returned
// function cancels the subscription.
type Viewport interface {
	OnResize(func()) func()
}

type Option func(*Renderer)

func WithContainer(c Container) Option {
	return func(r *Renderer) {
		r.container = c
	}
}

func WithDisplay(d Display) Option {
	return func(r *Renderer) {
		r.display = d
	}
}

func WithViewport(v Viewport) Option {
	return func(r *Renderer) {
		r.viewport = v
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDrawHook registers a function called after every successful draw,
// while the surface still holds the frame.
func WithDrawHook(fn func(Geometry)) Option {
	return func(r *Renderer) {
		r.hook = fn
	}
}

// Renderer binds a chart to a surface. It draws once when mounted and
// again on every resize of its viewport until it is closed.
type Renderer struct {
	chart     Chart
	surface   Surface
	container Container
	display   Display
	viewport  Viewport
	logger    *slog.Logger
	hook      func(Geometry)

	mu      sync.Mutex
	mounted bool
	closed  bool
	release func()
}

func NewRenderer(ch Chart, s Surface, opts ...Option) *Renderer {
	r := Renderer{
		chart:   ch,
		surface: s,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&r)
	}
	return &r
}

func (r *Renderer) Chart() Chart {
	return r.chart
}

// Mount draws the chart and subscribes to the resize events of the
// viewport. Mounting twice is a no-op.
func (r *Renderer) Mount() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.mounted {
		r.mu.Unlock()
		return nil
	}
	r.mounted = true
	r.mu.Unlock()

	r.Draw()

	if r.viewport == nil {
		return nil
	}
	release := r.viewport.OnResize(r.resize)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		release()
		return ErrClosed
	}
	r.release = release
	return nil
}

func (r *Renderer) resize() {
	r.logger.Debug("viewport resized", "chart", r.chart.Name)
	r.Draw()
}

// Draw runs a full setup, layout and paint cycle. It returns false when the
// renderer is closed or the surface has no drawing context.
func (r *Renderer) Draw() (Geometry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return Geometry{}, false
	}
	g, ok := r.chart.Draw(r.surface, r.container, r.display)
	if !ok {
		r.logger.Debug("no drawing context, skip draw", "chart", r.chart.Name)
		return g, false
	}
	r.logger.Debug("chart drawn",
		"chart", r.chart.Name,
		"width", g.Surface.CSSWidth,
		"height", g.Surface.CSSHeight,
		"dpr", g.Surface.PixelRatio,
		"bars", len(g.Bars),
	)
	if r.hook != nil {
		r.hook(g)
	}
	return g, true
}

// Close cancels the resize subscription. It is safe to call Close more
// than once and from any goroutine.
func (r *Renderer) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	release := r.release
	r.release = nil
	r.mu.Unlock()

	if release != nil {
		release()
	}
	return nil
}
