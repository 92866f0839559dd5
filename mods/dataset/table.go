package dataset

import (
	"fmt"
	"time"
)

// Table is an in-memory tabular record set. Cells are held as any,
// string when loaded, float64/time.Time after the parsing passes.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

func NewTable(columns []string) *Table {
	t := &Table{
		columns: append([]string{}, columns...),
		index:   map[string]int{},
	}
	for i, c := range t.columns {
		t.index[c] = i
	}
	return t
}

func (t *Table) Columns() []string {
	return append([]string{}, t.columns...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) Row(i int) []any {
	return t.rows[i]
}

func (t *Table) Append(row []any) error {
	if len(row) != len(t.columns) {
		return inputErrorf("row has %d fields, table has %d columns", len(row), len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

func (t *Table) Value(row int, col string) (any, bool) {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	return t.rows[row][idx], true
}

func (t *Table) SetValue(row int, col string, v any) bool {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return false
	}
	t.rows[row][idx] = v
	return true
}

// StringValue renders a cell for display and category comparison,
// empty string for nil cells, ISO-8601 for times.
func (t *Table) StringValue(row int, col string) string {
	v, ok := t.Value(row, col)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02T15:04:05")
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (t *Table) FloatValue(row int, col string) (float64, bool) {
	v, ok := t.Value(row, col)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (t *Table) TimeValue(row int, col string) (time.Time, bool) {
	v, ok := t.Value(row, col)
	if !ok {
		return time.Time{}, false
	}
	ts, ok := v.(time.Time)
	return ts, ok
}

// AddColumn appends a column; values must align with the current rows.
func (t *Table) AddColumn(name string, values []any) error {
	if t.HasColumn(name) {
		return inputErrorf("column %q already exists", name)
	}
	if len(values) != len(t.rows) {
		return inputErrorf("column %q has %d values, table has %d rows", name, len(values), len(t.rows))
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], values[i])
	}
	return nil
}

// Clone copies the table structure and rows; cell values are shared.
func (t *Table) Clone() *Table {
	ret := NewTable(t.columns)
	ret.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		ret.rows[i] = append([]any{}, row...)
	}
	return ret
}

// DistinctValues returns the distinct values of a column in order of
// first appearance.
func (t *Table) DistinctValues(col string) []string {
	seen := map[string]bool{}
	ret := []string{}
	for i := range t.rows {
		v := t.StringValue(i, col)
		if !seen[v] {
			seen[v] = true
			ret = append(ret, v)
		}
	}
	return ret
}
