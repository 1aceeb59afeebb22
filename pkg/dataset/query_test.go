package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	frames := []Frame{{
		Columns: []string{"Date", "Name", "Time To Takeoff", "MRSI"},
		Records: [][]string{
			{"2024-01-01", "A", "0.21", "35.2"},
			{"2024-01-02", "A", "0.23", "34.8"},
			{"2024-01-03", "A", "0.20", "36.1"},
			{"2024-01-02", "B", "0.30", "28.5"},
			{"2024-01-05", "A", "n/a", "35.0"},
		},
	}}
	table, err := Build(frames)
	require.NoError(t, err)
	return table
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed := ParseDate(value)
	require.False(t, parsed.IsZero())
	return parsed
}

func TestFilter_SubjectAndRangeInclusive(t *testing.T) {
	table := testTable(t)

	view := table.Filter("A", day(t, "2024-01-01"), day(t, "2024-01-03"))
	require.Len(t, view.Rows, 3)
	require.Equal(t, "A", view.Subject)

	// Bounds are inclusive on both ends.
	view = table.Filter("A", day(t, "2024-01-02"), day(t, "2024-01-02"))
	require.Len(t, view.Rows, 1)
}

func TestFilter_ViewIsSubsetSharingColumns(t *testing.T) {
	table := testTable(t)
	view := table.Filter("B", day(t, "2024-01-01"), day(t, "2024-01-31"))

	require.Equal(t, table.Columns, view.Columns)
	require.Len(t, view.Rows, 1)
	for _, row := range view.Rows {
		require.Contains(t, table.Rows, row)
	}
}

func TestFilter_NoMatchIsEmptyNotError(t *testing.T) {
	table := testTable(t)

	view := table.Filter("Z", day(t, "2024-01-01"), day(t, "2024-01-31"))
	require.True(t, view.Empty())

	view = table.Filter("A", day(t, "2025-01-01"), day(t, "2025-12-31"))
	require.True(t, view.Empty())
}

func TestSeries_SkipsNonNumericCells(t *testing.T) {
	table := testTable(t)
	view := table.Filter("A", day(t, "2024-01-01"), day(t, "2024-01-31"))

	dates, values, err := view.Series("time_to_takeoff")
	require.NoError(t, err)
	require.Len(t, dates, 3) // the "n/a" cell is skipped
	require.Equal(t, []float64{0.21, 0.23, 0.20}, values)
}

func TestSeries_UnknownColumn(t *testing.T) {
	table := testTable(t)
	view := table.Filter("A", day(t, "2024-01-01"), day(t, "2024-01-31"))

	_, _, err := view.Series("nonexistent_column")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSubjects_DistinctInRowOrder(t *testing.T) {
	table := testTable(t)
	require.Equal(t, []string{"A", "B"}, table.Subjects())
}

func TestSpan(t *testing.T) {
	table := testTable(t)
	start, end := table.Span()
	require.Equal(t, day(t, "2024-01-01"), start)
	require.Equal(t, day(t, "2024-01-05"), end)
}
