// Package xlsxbook renders one bazar day's accumulated books as an
// xlsx workbook: pana table, time table, jodi table and the customer
// summary, one sheet each. The package is a pure renderer; callers
// fetch the rows and decide where the bytes go.
package xlsxbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	tim "tallybook/internal/platform/time"
	"tallybook/internal/services/slips/domain"
)

// Sheet names in workbook order
const (
	SheetPana    = "Pana Table"
	SheetTime    = "Time Table"
	SheetJodi    = "Jodi Table"
	SheetSummary = "Summary"
)

// Book is the full content of one workbook
type Book struct {
	Bazar   string
	Day     time.Time
	Panas   []domain.PanaLedgerRow
	Times   []domain.TimeLedgerRow
	Jodis   []domain.JodiLedgerRow
	Summary []domain.SummaryRow
}

// Filename is the suggested file name for a rendered book
func Filename(bazar string, day time.Time) string {
	code := strings.ToLower(strings.ReplaceAll(bazar, ".", ""))
	return fmt.Sprintf("tallybook_%s_%s.xlsx", code, day.Format("20060102"))
}

// Render builds the workbook. Every sheet is present even when its
// table is empty, so a slow day still opens as a recognizable book
func Render(b Book) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsxbook: header style: %w", err)
	}
	total, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsxbook: total style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetPana); err != nil {
		return nil, fmt.Errorf("xlsxbook: rename sheet: %w", err)
	}
	panaSheet(f, header, total, b)

	for _, name := range []string{SheetTime, SheetJodi, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsxbook: add sheet %s: %w", name, err)
		}
	}
	timeSheet(f, header, total, b)
	jodiSheet(f, header, total, b)
	summarySheet(f, header, total, b)

	if idx, err := f.GetSheetIndex(SheetPana); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// set writes one cell, ignoring the only error excelize can return
// here (a malformed coordinate, which row/col arithmetic never makes)
func set(f *excelize.File, sheet string, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}

func headRow(f *excelize.File, sheet string, style int, labels ...string) {
	for i, h := range labels {
		set(f, sheet, i+1, 1, h)
	}
	_ = f.SetRowStyle(sheet, 1, 1, style)
}

func panaSheet(f *excelize.File, header, total int, b Book) {
	headRow(f, SheetPana, header, bookTitle(b, "Number"), "Value")

	sum := 0
	for i, row := range b.Panas {
		set(f, SheetPana, 1, i+2, fmt.Sprintf("%03d", row.Number))
		set(f, SheetPana, 2, i+2, row.Value)
		sum += row.Value
	}
	last := len(b.Panas) + 2
	set(f, SheetPana, 1, last, "Total")
	set(f, SheetPana, 2, last, sum)
	_ = f.SetRowStyle(SheetPana, last, last, total)
	_ = f.SetColWidth(SheetPana, "A", "A", 18)
	_ = f.SetColWidth(SheetPana, "B", "B", 12)
}

func timeSheet(f *excelize.File, header, total int, b Book) {
	labels := []string{bookTitle(b, "Customer")}
	for c := 0; c <= 9; c++ {
		labels = append(labels, fmt.Sprintf("%d", c))
	}
	labels = append(labels, "Total")
	headRow(f, SheetTime, header, labels...)

	var colSum [10]int
	grand := 0
	for i, row := range b.Times {
		set(f, SheetTime, 1, i+2, row.Customer)
		for c, v := range row.Cols {
			set(f, SheetTime, c+2, i+2, v)
			colSum[c] += v
		}
		set(f, SheetTime, 12, i+2, row.Total)
		grand += row.Total
	}
	last := len(b.Times) + 2
	set(f, SheetTime, 1, last, "Total")
	for c, v := range colSum {
		set(f, SheetTime, c+2, last, v)
	}
	set(f, SheetTime, 12, last, grand)
	_ = f.SetRowStyle(SheetTime, last, last, total)
	_ = f.SetColWidth(SheetTime, "A", "A", 24)
	_ = f.SetColWidth(SheetTime, "B", "L", 9)
}

func jodiSheet(f *excelize.File, header, total int, b Book) {
	headRow(f, SheetJodi, header, bookTitle(b, "Number"), "Value")

	sum := 0
	for i, row := range b.Jodis {
		set(f, SheetJodi, 1, i+2, fmt.Sprintf("%02d", row.Number))
		set(f, SheetJodi, 2, i+2, row.Value)
		sum += row.Value
	}
	last := len(b.Jodis) + 2
	set(f, SheetJodi, 1, last, "Total")
	set(f, SheetJodi, 2, last, sum)
	_ = f.SetRowStyle(SheetJodi, last, last, total)
	_ = f.SetColWidth(SheetJodi, "A", "A", 18)
	_ = f.SetColWidth(SheetJodi, "B", "B", 12)
}

func summarySheet(f *excelize.File, header, total int, b Book) {
	headRow(f, SheetSummary, header,
		bookTitle(b, "Customer"), "Pana", "Type", "Time", "Multi", "Direct", "Jodi", "Grand")

	var t domain.Totals
	for i, row := range b.Summary {
		set(f, SheetSummary, 1, i+2, row.Customer)
		set(f, SheetSummary, 2, i+2, row.Pana)
		set(f, SheetSummary, 3, i+2, row.Type)
		set(f, SheetSummary, 4, i+2, row.Time)
		set(f, SheetSummary, 5, i+2, row.Multi)
		set(f, SheetSummary, 6, i+2, row.Direct)
		set(f, SheetSummary, 7, i+2, row.Jodi)
		set(f, SheetSummary, 8, i+2, row.Grand)
		t.Pana += row.Pana
		t.Type += row.Type
		t.Time += row.Time
		t.Multi += row.Multi
		t.Direct += row.Direct
		t.Jodi += row.Jodi
		t.Grand += row.Grand
	}
	last := len(b.Summary) + 2
	set(f, SheetSummary, 1, last, "Total")
	set(f, SheetSummary, 2, last, t.Pana)
	set(f, SheetSummary, 3, last, t.Type)
	set(f, SheetSummary, 4, last, t.Time)
	set(f, SheetSummary, 5, last, t.Multi)
	set(f, SheetSummary, 6, last, t.Direct)
	set(f, SheetSummary, 7, last, t.Jodi)
	set(f, SheetSummary, 8, last, t.Grand)
	_ = f.SetRowStyle(SheetSummary, last, last, total)
	_ = f.SetColWidth(SheetSummary, "A", "A", 24)
	_ = f.SetColWidth(SheetSummary, "B", "H", 10)
}

// bookTitle stamps the bazar and day into the first header cell so a
// printed sheet still says which book it is
func bookTitle(b Book, first string) string {
	return fmt.Sprintf("%s  (%s %s)", first, b.Bazar, tim.FormatDay(b.Day))
}
