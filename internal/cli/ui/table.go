// Package ui renders mealfit CLI output: tables, matrices, and section
// headers with optional color.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mealfit/mealfit/analyzer"
)

// Cell glyphs for boolean matrix values.
const (
	CellYes = "✅"
	CellNo  = "❌"
)

// Table renders simple aligned columns.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// TableOptions configures table behavior.
type TableOptions struct {
	NoColor bool
}

// NewTable creates a table with the given headers.
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}
	return &Table{
		writer:  w,
		headers: headers,
		rows:    make([][]string, 0),
		noColor: noColor,
	}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to its writer.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	if t.noColor {
		bold.DisableColor()
	}
	for i, header := range t.headers {
		bold.Fprint(t.writer, padRight(header, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	gray := color.New(color.FgHiBlack)
	if t.noColor {
		gray.DisableColor()
	}
	for i, width := range widths {
		gray.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			gray.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprint(t.writer, padRight(cell, widths[i]))
				if i < len(row)-1 {
					fmt.Fprint(t.writer, "  ")
				}
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// RenderMatrix writes a compatibility matrix as an aligned table with a
// trailing compatible-count column.
func RenderMatrix(w io.Writer, m analyzer.Matrix, opts *TableOptions) {
	headers := append([]string{"Meal"}, m.PersonLabels...)
	headers = append(headers, "Compatible")

	table := NewTable(w, headers, opts)
	for i, row := range m.Cells {
		cells := make([]string, 0, len(row)+2)
		cells = append(cells, m.MealNames[i])
		count := 0
		for _, ok := range row {
			cells = append(cells, BoolCell(ok))
			if ok {
				count++
			}
		}
		cells = append(cells, fmt.Sprintf("%d", count))
		table.AddRow(cells...)
	}
	table.Render()
}

// BoolCell maps a boolean to its display glyph.
func BoolCell(ok bool) string {
	if ok {
		return CellYes
	}
	return CellNo
}

// padRight pads a string with spaces on the right to reach the target width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Header renders a styled section header with an underline.
func Header(w io.Writer, title string, noColor bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	Divider(w, len(title), noColor)
}

// Divider renders a horizontal divider line.
func Divider(w io.Writer, width int, noColor bool) {
	if width == 0 {
		width = 80
	}
	gray := color.New(color.FgHiBlack)
	if noColor {
		gray.DisableColor()
	}
	gray.Fprintln(w, strings.Repeat("─", width))
}
