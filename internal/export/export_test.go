package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/pitchcharts"
)

func TestTableOf(t *testing.T) {
	tab, err := TableOf(charts.ComparisonChart())
	if err != nil {
		t.Fatalf("TableOf() failed: %s", err)
	}
	wantHeader := []string{"Category", "Before rollout", "After rollout", "Scale max", "Unit"}
	if diff := cmp.Diff(wantHeader, tab.Header); diff != "" {
		t.Errorf("header mismatched (-want +got):\n%s", diff)
	}
	wantRow := []any{"Service quality", 100.0, 125.0, 125.0, "%"}
	if diff := cmp.Diff(wantRow, tab.Rows[2]); diff != "" {
		t.Errorf("row mismatched (-want +got):\n%s", diff)
	}

	if _, err := TableOf(charts.Chart{Name: "empty"}); !errors.Is(err, ErrNoData) {
		t.Errorf("TableOf() error = %v, want %v", err, ErrNoData)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, charts.MarketChart(), charts.ComparisonChart()); err != nil {
		t.Fatalf("Write() failed: %s", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("invalid workbook: %s", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{"market", "roi"}, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatched (-want +got):\n%s", diff)
	}
	rows, err := f.GetRows("market")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Category", "Value", "Scale max", "Unit"},
		{"VRP accuracy", "99.9", "100", ""},
		{"Processing speed", "95", "100", ""},
		{"Cost savings", "40", "50", "%"},
	}
	var got [][]string
	for _, r := range rows {
		if len(r) < 4 {
			t.Fatalf("short row %v", r)
		}
		got = append(got, r[:4])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatched (-want +got):\n%s", diff)
	}
}

func TestWriteNothing(t *testing.T) {
	if err := Write(&bytes.Buffer{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Write() error = %v, want %v", err, ErrNoData)
	}
}
