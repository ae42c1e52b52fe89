package charts

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDataset(t *testing.T) {
	tests := []struct {
		description string
		entries     []Entry
		err         error
	}{{
		description: "valid",
		entries:     []Entry{NewEntry("a", 1, 2), NewEntry("b", 0, 1)},
	}, {
		description: "empty",
		err:         ErrEmptyDataset,
	}, {
		description: "negative value",
		entries:     []Entry{NewEntry("a", -1, 2)},
		err:         ErrNegativeValue,
	}, {
		description: "nan value",
		entries:     []Entry{NewEntry("a", math.NaN(), 2)},
		err:         ErrNegativeValue,
	}, {
		description: "zero scale",
		entries:     []Entry{NewEntry("a", 1, 2), NewEntry("b", 1, 0)},
		err:         ErrInvalidScale,
	}}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			ds, err := NewDataset(test.entries...)
			if !errors.Is(err, test.err) {
				t.Fatalf("NewDataset() error = %v, want %v", err, test.err)
			}
			if err == nil && ds.Len() != len(test.entries) {
				t.Errorf("got %d entries, want %d", ds.Len(), len(test.entries))
			}
		})
	}
}

func TestDatasetImmutable(t *testing.T) {
	entries := []Entry{NewEntry("a", 1, 2)}
	ds := MustDataset(entries...)
	entries[0].Value = 2

	got := ds.Entries()
	got[0].Label = "b"

	if diff := cmp.Diff(NewEntry("a", 1, 2), ds.At(0)); diff != "" {
		t.Errorf("dataset modified from outside (-want +got):\n%s", diff)
	}
}

func TestNewComparison(t *testing.T) {
	series := []string{"before", "after"}
	tests := []struct {
		description string
		max         float64
		groups      []Group
		err         error
	}{{
		description: "valid",
		max:         10,
		groups:      []Group{NewGroup("a", 1, 2)},
	}, {
		description: "no group",
		max:         10,
		err:         ErrEmptyDataset,
	}, {
		description: "bad scale",
		max:         -1,
		groups:      []Group{NewGroup("a", 1, 2)},
		err:         ErrInvalidScale,
	}, {
		description: "missing value",
		max:         10,
		groups:      []Group{NewGroup("a", 1)},
		err:         ErrSeriesCount,
	}, {
		description: "negative value",
		max:         10,
		groups:      []Group{NewGroup("a", 1, -2)},
		err:         ErrNegativeValue,
	}}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			_, err := NewComparison(series, test.max, "%", test.groups...)
			if !errors.Is(err, test.err) {
				t.Errorf("NewComparison() error = %v, want %v", err, test.err)
			}
		})
	}
}

func TestComparisonEntry(t *testing.T) {
	e := ComparisonDataset().Entry(2, 1)
	if e.Label != "Service quality" || e.Value != 125 || e.ScaleMax != 125 {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Text() != "125%" {
		t.Errorf("Text() = %q, want %q", e.Text(), "125%")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		ch, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %s", name, err)
		}
		if ch.Name != name {
			t.Errorf("Lookup(%q) returned chart %q", name, ch.Name)
		}
	}
	if _, err := Lookup("pie"); !errors.Is(err, ErrUnknownChart) {
		t.Errorf("Lookup(pie) error = %v, want %v", err, ErrUnknownChart)
	}
}
