// Package dataset builds and queries the unified in-memory table of
// performance measurements. The table is assembled once at startup from
// extracted CSV files and is read-only afterward, so request handlers can
// share it without locking.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Well-known columns after normalization.
const (
	SubjectColumn = "name"
	DateColumn    = "date"
)

// ErrColumnNotFound is returned when a metric name does not exist in the
// table's column set.
var ErrColumnNotFound = errors.New("column not found")

// Row is a single measurement event. Date is parsed out of the raw cells;
// everything else stays as text until a metric series is materialized.
type Row struct {
	Date  time.Time
	Cells map[string]string
}

// Table is the unified dataset. Built once, never mutated afterward.
type Table struct {
	Columns []string
	Rows    []Row

	// DroppedRows counts source rows discarded for an unparseable date.
	DroppedRows int

	columnSet map[string]bool
}

// HasColumn reports whether name is part of the table's column set.
func (t *Table) HasColumn(name string) bool {
	return t.columnSet[name]
}

// Subjects returns the distinct subject identifiers in row order.
func (t *Table) Subjects() []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, row := range t.Rows {
		s := row.Cells[SubjectColumn]
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		subjects = append(subjects, s)
	}
	return subjects
}

// Span returns the oldest and newest dates in the table.
func (t *Table) Span() (start, end time.Time) {
	if len(t.Rows) == 0 {
		return
	}
	start = t.Rows[0].Date
	end = t.Rows[0].Date
	for _, row := range t.Rows[1:] {
		if row.Date.Before(start) {
			start = row.Date
		}
		if row.Date.After(end) {
			end = row.Date
		}
	}
	return start, end
}

// View is the ephemeral row subset matching one request's subject and date
// range. It shares the table's column set and row storage.
type View struct {
	Subject string
	Columns []string
	Rows    []Row

	columnSet map[string]bool
}

// Filter selects rows where the subject matches exactly and the date falls
// within [start, end] inclusive. An empty result is normal, not an error.
func (t *Table) Filter(subject string, start, end time.Time) *View {
	view := &View{
		Subject:   subject,
		Columns:   t.Columns,
		columnSet: t.columnSet,
	}
	for _, row := range t.Rows {
		if row.Cells[SubjectColumn] != subject {
			continue
		}
		if row.Date.Before(start) || row.Date.After(end) {
			continue
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Empty reports whether the view matched no rows.
func (v *View) Empty() bool {
	return len(v.Rows) == 0
}

// Series materializes the (date, value) points for one metric column.
// Cells that fail to parse as numbers are skipped. An unknown column name
// returns ErrColumnNotFound.
func (v *View) Series(metric string) (dates []time.Time, values []float64, err error) {
	if !v.columnSet[metric] {
		return nil, nil, fmt.Errorf("%w: %q", ErrColumnNotFound, metric)
	}
	for _, row := range v.Rows {
		val, err := strconv.ParseFloat(row.Cells[metric], 64)
		if err != nil {
			continue
		}
		dates = append(dates, row.Date)
		values = append(values, val)
	}
	return dates, values, nil
}
