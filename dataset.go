package charts

import (
	"fmt"
	"math"
	"strconv"
)

// Entry is one bar of a single series chart.
type Entry struct {
	Label    string
	Value    float64
	ScaleMax float64
	Unit     string
}

func NewEntry(label string, value, max float64) Entry {
	return Entry{
		Label:    label,
		Value:    value,
		ScaleMax: max,
	}
}

func (e Entry) WithUnit(unit string) Entry {
	e.Unit = unit
	return e
}

// Ratio is the normalized value of the entry: value / scaleMax.
func (e Entry) Ratio() float64 {
	return e.Value / e.ScaleMax
}

func (e Entry) Text() string {
	return formatValue(e.Value) + e.Unit
}

func (e Entry) validate() error {
	if math.IsNaN(e.Value) || e.Value < 0 {
		return fmt.Errorf("%s: %w", e.Label, ErrNegativeValue)
	}
	if math.IsNaN(e.ScaleMax) || e.ScaleMax <= 0 {
		return fmt.Errorf("%s: %w", e.Label, ErrInvalidScale)
	}
	return nil
}

// Dataset is an immutable, non empty sequence of entries.
type Dataset struct {
	entries []Entry
}

func NewDataset(entries ...Entry) (Dataset, error) {
	if len(entries) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return Dataset{}, err
		}
	}
	ds := Dataset{
		entries: make([]Entry, len(entries)),
	}
	copy(ds.entries, entries)
	return ds, nil
}

func MustDataset(entries ...Entry) Dataset {
	ds, err := NewDataset(entries...)
	if err != nil {
		panic(err)
	}
	return ds
}

func (d Dataset) Len() int {
	return len(d.entries)
}

func (d Dataset) At(i int) Entry {
	return d.entries[i]
}

func (d Dataset) Entries() []Entry {
	es := make([]Entry, len(d.entries))
	copy(es, d.entries)
	return es
}

func (d Dataset) Labels() []string {
	var list []string
	for _, e := range d.entries {
		list = append(list, e.Label)
	}
	return list
}

// Group is one category of a comparison chart with one value per series.
type Group struct {
	Label  string
	Values []float64
}

func NewGroup(label string, values ...float64) Group {
	return Group{
		Label:  label,
		Values: values,
	}
}

// Comparison is an immutable dataset where every category holds one value
// per series, all measured against the same scale.
type Comparison struct {
	series   []string
	groups   []Group
	scaleMax float64
	unit     string
}

func NewComparison(series []string, max float64, unit string, groups ...Group) (Comparison, error) {
	if len(groups) == 0 || len(series) == 0 {
		return Comparison{}, ErrEmptyDataset
	}
	if math.IsNaN(max) || max <= 0 {
		return Comparison{}, ErrInvalidScale
	}
	cmp := Comparison{
		series:   append([]string{}, series...),
		scaleMax: max,
		unit:     unit,
	}
	for _, g := range groups {
		if len(g.Values) != len(series) {
			return Comparison{}, fmt.Errorf("%s: %w", g.Label, ErrSeriesCount)
		}
		for _, v := range g.Values {
			if math.IsNaN(v) || v < 0 {
				return Comparison{}, fmt.Errorf("%s: %w", g.Label, ErrNegativeValue)
			}
		}
		cmp.groups = append(cmp.groups, NewGroup(g.Label, append([]float64{}, g.Values...)...))
	}
	return cmp, nil
}

func MustComparison(series []string, max float64, unit string, groups ...Group) Comparison {
	cmp, err := NewComparison(series, max, unit, groups...)
	if err != nil {
		panic(err)
	}
	return cmp
}

func (c Comparison) Len() int {
	return len(c.groups)
}

func (c Comparison) Series() []string {
	return append([]string{}, c.series...)
}

func (c Comparison) ScaleMax() float64 {
	return c.scaleMax
}

func (c Comparison) Labels() []string {
	var list []string
	for _, g := range c.groups {
		list = append(list, g.Label)
	}
	return list
}

// Entry returns the value of series s in group i as an entry measured
// against the shared scale.
func (c Comparison) Entry(i, s int) Entry {
	g := c.groups[i]
	e := NewEntry(g.Label, g.Values[s], c.scaleMax)
	return e.WithUnit(c.unit)
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
