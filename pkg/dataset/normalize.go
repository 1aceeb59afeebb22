package dataset

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// dateLayouts are tried in order when coercing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// NormalizeName standardizes a column label: trimmed, lowercased, interior
// spaces replaced with underscores. Applying it twice is a no-op.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// ParseDate coerces a cell value to a date. The zero time marks an
// unparseable value.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Build merges the loaded frames into the unified table: column names are
// normalized, column sets are unioned in first-seen order, the date column is
// parsed, and rows without a parseable date are dropped. Row order is frame
// order then within-frame order; nothing is deduplicated.
func Build(frames []Frame) (*Table, error) {
	table := &Table{columnSet: make(map[string]bool)}

	for _, frame := range frames {
		normalized := make([]string, len(frame.Columns))
		for i, col := range frame.Columns {
			normalized[i] = NormalizeName(col)
			if !table.columnSet[normalized[i]] {
				table.columnSet[normalized[i]] = true
				table.Columns = append(table.Columns, normalized[i])
			}
		}

		for _, rec := range frame.Records {
			cells := make(map[string]string, len(normalized))
			for i, col := range normalized {
				if i < len(rec) {
					cells[col] = strings.TrimSpace(rec[i])
				}
			}
			date := ParseDate(cells[DateColumn])
			if date.IsZero() {
				table.DroppedRows++
				continue
			}
			table.Rows = append(table.Rows, Row{Date: date, Cells: cells})
		}
	}

	if !table.columnSet[DateColumn] {
		return nil, fmt.Errorf("merged data has no %q column", DateColumn)
	}
	if len(table.Rows) == 0 {
		return nil, errors.New("merged data has no rows with a parseable date")
	}

	log.Printf("✅ Merged %d files into unified table (%d rows, %d columns, %d rows dropped)",
		len(frames), len(table.Rows), len(table.Columns), table.DroppedRows)
	return table, nil
}
