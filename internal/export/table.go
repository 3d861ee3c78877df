// Package export renders report tables to the console, CSV files and XLSX
// workbooks.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows, ready for any of the writers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Append adds one row.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// RenderConsole pretty-prints the table.
func (t Table) RenderConsole(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Headers)
	tw.SetAutoFormatHeaders(false)
	for _, row := range t.Rows {
		tw.Append(row)
	}
	tw.Render()
}

// WriteCSV writes the table to a CSV file.
func (t Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes the table as the first sheet of a new workbook.
func (t Table) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &t.Headers); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
