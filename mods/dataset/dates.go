package dataset

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2006/01/02",
}

// ParseDateColumn converts the cells of a date column to time.Time in place.
// Empty cells become nil; unparsable cells become nil and are reported in
// the returned warnings, never silently dropped.
func ParseDateColumn(t *Table, col string) ([]string, error) {
	if !t.HasColumn(col) {
		return nil, inputErrorf("date column %q not found in input", col)
	}
	warnings := []string{}
	for i := 0; i < t.RowCount(); i++ {
		v, _ := t.Value(i, col)
		switch val := v.(type) {
		case nil:
			continue
		case time.Time:
			continue
		default:
			s := strings.TrimSpace(fmt.Sprintf("%v", val))
			if s == "" {
				t.SetValue(i, col, nil)
				continue
			}
			if ts, ok := parseDate(s); ok {
				t.SetValue(i, col, ts)
			} else {
				t.SetValue(i, col, nil)
				warnings = append(warnings, fmt.Sprintf("row %d: unparsable date %q in column %q", i+1, s, col))
			}
		}
	}
	return warnings, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
