package charts

import (
	"fmt"
	"sort"
)

const (
	MarketChartName     = "market"
	ComparisonChartName = "roi"
)

func MarketDataset() Dataset {
	return MustDataset(
		NewEntry("VRP accuracy", 99.9, 100),
		NewEntry("Processing speed", 95, 100),
		NewEntry("Cost savings", 40, 50).WithUnit("%"),
	)
}

func ComparisonDataset() Comparison {
	return MustComparison(
		[]string{"Before rollout", "After rollout"},
		125,
		"%",
		NewGroup("Delivery time", 100, 75),
		NewGroup("Operating costs", 100, 60),
		NewGroup("Service quality", 100, 125),
	)
}

func MarketChart() Chart {
	return Chart{
		Name:        MarketChartName,
		Caption:     "VRP Solution efficiency",
		Description: "Bar chart of VRP Solution efficiency indicators",
		Layout: BarLayout{
			Config: MarketConfig(),
			Data:   MarketDataset(),
		},
		Painter: Painter{
			Theme: MarketTheme(),
		},
	}
}

func ComparisonChart() Chart {
	return Chart{
		Name:        ComparisonChartName,
		Caption:     "Before and after rollout",
		Description: "Bar chart comparing indicators before and after the rollout",
		Layout: GroupLayout{
			Config: ComparisonConfig(),
			Data:   ComparisonDataset(),
		},
		Painter: Painter{
			Theme: ComparisonTheme(),
		},
	}
}

var builtins = map[string]func() Chart{
	MarketChartName:     MarketChart,
	ComparisonChartName: ComparisonChart,
}

// Lookup returns a fresh copy of the named chart.
func Lookup(name string) (Chart, error) {
	fn, ok := builtins[name]
	if !ok {
		return Chart{}, fmt.Errorf("%s: %w", name, ErrUnknownChart)
	}
	return fn(), nil
}

// Names returns the names of all built-in charts, sorted.
func Names() []string {
	var list []string
	for n := range builtins {
		list = append(list, n)
	}
	sort.Strings(list)
	return list
}
