package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeCoordinates parses the projected coordinate columns into floats,
// accepting decimal commas. It does not touch the raw cells; the parsed
// values come back as parallel slices in row order.
func NormalizeCoordinates(t *Table, xCol, yCol string) (xs []float64, ys []float64, err error) {
	for _, col := range []string{xCol, yCol} {
		if !t.HasColumn(col) {
			return nil, nil, inputErrorf("coordinate column %q not found in input", col)
		}
	}
	xs = make([]float64, t.RowCount())
	ys = make([]float64, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		for _, c := range []struct {
			name string
			dst  []float64
		}{{xCol, xs}, {yCol, ys}} {
			v, _ := t.Value(i, c.name)
			f, perr := parseCoordinate(v)
			if perr != nil {
				return nil, nil, &MalformedCoordinateError{
					Row:    i + 1,
					Column: c.name,
					Value:  t.StringValue(i, c.name),
				}
			}
			c.dst[i] = f
		}
	}
	return xs, ys, nil
}

// parseCoordinate accepts float64 cells as-is and parses text cells after
// replacing the decimal comma; comma substitution is a no-op for values
// already using the decimal point.
func parseCoordinate(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("not a finite number")
		}
		return val, nil
	case nil:
		return 0, fmt.Errorf("empty coordinate")
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", val))
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("not a finite number")
		}
		return f, nil
	}
}
