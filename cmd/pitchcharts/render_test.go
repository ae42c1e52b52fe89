package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/pitchcharts"
)

func TestRenderChart(t *testing.T) {
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		description string
		opts        renderOptions
		files       []string
	}{{
		description: "single width",
		opts:        renderOptions{Widths: []float64{750}, Ratio: 1, Format: "png"},
		files:       []string{"market.png"},
	}, {
		description: "resized",
		opts:        renderOptions{Widths: []float64{320, 750}, Ratio: 2, Format: "svg"},
		files:       []string{"market-320.svg", "market-750.svg"},
	}, {
		description: "unmeasured width named after the drawn surface",
		opts:        renderOptions{Widths: []float64{0, 750}, Ratio: 1, Format: "png"},
		files:       []string{"market-200.png", "market-750.png"},
	}}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			test.opts.Dir = t.TempDir()
			if err := renderChart(charts.MarketChart(), test.opts); err != nil {
				t.Fatalf("renderChart() failed: %s", err)
			}
			for _, f := range test.files {
				fi, err := os.Stat(filepath.Join(test.opts.Dir, f))
				if err != nil {
					t.Errorf("%s not written: %s", f, err)
					continue
				}
				if fi.Size() == 0 {
					t.Errorf("%s is empty", f)
				}
			}
		})
	}
}

func TestSelectCharts(t *testing.T) {
	all, err := selectCharts(nil)
	if err != nil || len(all) != len(charts.Names()) {
		t.Fatalf("selectCharts(nil) = %d charts, %v", len(all), err)
	}
	if _, err := selectCharts([]string{"roi", "pie"}); err == nil {
		t.Errorf("selectCharts() accepted an unknown chart")
	}
}
