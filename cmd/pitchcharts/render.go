package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/canvas"
	"github.com/midbel/pitchcharts/viewport"
)

var renderCmd = &cobra.Command{
	Use:   "render [chart...]",
	Short: "Render charts to image files",
	Long: `Render the named charts, or all of them, to PNG or SVG files.
When several widths are given, the chart is drawn once and redrawn for each
following width, as a browser window being resized.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := selectCharts(args)
		if err != nil {
			return err
		}
		opts := renderOptions{
			Widths:  []float64{cfg.Render.Width},
			Ratio:   cfg.Render.Ratio,
			Format:  cfg.Render.Format,
			Dir:     cfg.Render.Dir,
			Workers: cfg.Render.Workers,
		}
		if cmd.Flags().Changed("width") {
			opts.Widths, _ = cmd.Flags().GetFloat64Slice("width")
		}
		if cmd.Flags().Changed("dpr") {
			opts.Ratio, _ = cmd.Flags().GetFloat64("dpr")
		}
		if cmd.Flags().Changed("format") {
			opts.Format, _ = cmd.Flags().GetString("format")
		}
		if cmd.Flags().Changed("dir") {
			opts.Dir, _ = cmd.Flags().GetString("dir")
		}
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return err
		}

		var grp errgroup.Group
		if opts.Workers > 0 {
			grp.SetLimit(opts.Workers)
		}
		for _, ch := range list {
			grp.Go(func() error {
				return renderChart(ch, opts)
			})
		}
		return grp.Wait()
	},
}

func init() {
	renderCmd.Flags().Float64Slice("width", nil, "container widths in CSS pixels")
	renderCmd.Flags().Float64("dpr", 1, "device pixel ratio")
	renderCmd.Flags().String("format", canvas.PNG, "output format (png, svg)")
	renderCmd.Flags().String("dir", ".", "output directory")
}

type renderOptions struct {
	Widths  []float64
	Ratio   float64
	Format  string
	Dir     string
	Workers int
}

func (o renderOptions) file(name string, width float64) string {
	base := fmt.Sprintf("%s.%s", name, o.Format)
	if len(o.Widths) > 1 {
		base = fmt.Sprintf("%s-%.0f.%s", name, width, o.Format)
	}
	return filepath.Join(o.Dir, base)
}

func renderChart(ch charts.Chart, opts renderOptions) error {
	if len(opts.Widths) == 0 {
		opts.Widths = []float64{0}
	}
	target, err := canvas.New(opts.Format)
	if err != nil {
		return err
	}
	var (
		win  = viewport.New(opts.Widths[0], opts.Ratio)
		fail error
	)
	hook := func(g charts.Geometry) {
		if fail != nil {
			return
		}
		file := opts.file(ch.Name, g.Surface.CSSWidth)
		if fail = writeFile(file, target); fail == nil {
			logger.Info("chart rendered",
				"chart", ch.Name,
				"file", file,
				"width", g.Surface.PixelWidth,
				"height", g.Surface.PixelHeight,
			)
		}
	}
	r := charts.NewRenderer(ch, target,
		charts.WithContainer(win),
		charts.WithDisplay(win),
		charts.WithViewport(win),
		charts.WithLogger(logger),
		charts.WithDrawHook(hook),
	)
	defer r.Close()

	if err := r.Mount(); err != nil {
		return err
	}
	for _, w := range opts.Widths[1:] {
		win.Resize(w, opts.Ratio)
	}
	if fail != nil {
		return fmt.Errorf("%s: %w", ch.Name, fail)
	}
	return nil
}

func writeFile(file string, t canvas.Target) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := t.Encode(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
