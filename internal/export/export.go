// Package export writes the datasets of charts into an Excel workbook, one
// sheet per chart.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/midbel/pitchcharts"
)

var ErrNoData = errors.New("chart has no exportable dataset")

// Table is the tabular form of a chart dataset: a header row followed by
// one row per category.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

func TableOf(ch charts.Chart) (Table, error) {
	t := Table{
		Name: ch.Name,
	}
	switch layout := ch.Layout.(type) {
	case charts.BarLayout:
		t.Header = []string{"Category", "Value", "Scale max", "Unit", "Ratio"}
		for _, e := range layout.Data.Entries() {
			t.Rows = append(t.Rows, []any{e.Label, e.Value, e.ScaleMax, e.Unit, e.Ratio()})
		}
	case charts.GroupLayout:
		var (
			data   = layout.Data
			series = data.Series()
		)
		t.Header = append([]string{"Category"}, series...)
		t.Header = append(t.Header, "Scale max", "Unit")
		for i, label := range data.Labels() {
			row := []any{label}
			var unit string
			for s := range series {
				e := data.Entry(i, s)
				row = append(row, e.Value)
				unit = e.Unit
			}
			row = append(row, data.ScaleMax(), unit)
			t.Rows = append(t.Rows, row)
		}
	default:
		return t, fmt.Errorf("%s: %w", ch.Name, ErrNoData)
	}
	return t, nil
}

// Workbook builds a workbook with one sheet per chart, in the given order.
func Workbook(list ...charts.Chart) (*excelize.File, error) {
	if len(list) == 0 {
		return nil, ErrNoData
	}
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	for i, ch := range list {
		t, err := TableOf(ch)
		if err == nil {
			err = writeSheet(f, i, t, bold)
		}
		if err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func Write(w io.Writer, list ...charts.Chart) error {
	f, err := Workbook(list...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func SaveAs(file string, list ...charts.Chart) error {
	f, err := Workbook(list...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(file)
}

func writeSheet(f *excelize.File, index int, t Table, style int) error {
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(t.Name); err != nil {
		return err
	}
	for col, h := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(t.Name, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err := f.SetCellStyle(t.Name, "A1", last, style); err != nil {
		return err
	}
	for r, row := range t.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.Name, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(t.Name, "A", "A", 24)
}
