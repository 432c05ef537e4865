package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cell glyphs for Markdown rendering.
const (
	cellYes = "✅"
	cellNo  = "❌"
)

// WriteCSV renders the matrix as CSV: a header row of person labels with
// the meal name in the first column, boolean cells, and a trailing
// per-meal compatible count.
func (m Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{"Meal"}, m.PersonLabels...)
	header = append(header, "Compatible Count")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range m.Cells {
		record := make([]string, 0, len(row)+2)
		record = append(record, m.MealNames[i])
		count := 0
		for _, ok := range row {
			record = append(record, strconv.FormatBool(ok))
			if ok {
				count++
			}
		}
		record = append(record, strconv.Itoa(count))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMarkdown renders the matrix as a Markdown table with ✅/❌ cells and
// the same shape as WriteCSV.
func (m Matrix) WriteMarkdown(w io.Writer) error {
	var b strings.Builder

	b.WriteString("| Meal |")
	for _, label := range m.PersonLabels {
		b.WriteString(" " + label + " |")
	}
	b.WriteString(" Compatible Count |\n")

	b.WriteString("| --- |")
	for range m.PersonLabels {
		b.WriteString(" --- |")
	}
	b.WriteString(" --- |\n")

	for i, row := range m.Cells {
		b.WriteString("| " + m.MealNames[i] + " |")
		count := 0
		for _, ok := range row {
			if ok {
				b.WriteString(" " + cellYes + " |")
				count++
			} else {
				b.WriteString(" " + cellNo + " |")
			}
		}
		fmt.Fprintf(&b, " %d |\n", count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
