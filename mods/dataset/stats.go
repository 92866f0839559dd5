package dataset

// ChartFallbackColor matches the default series color of the charting
// collaborator; categories without a configured color use it.
const ChartFallbackColor = "#1f77b4"

type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
	Color    string  `json:"color"`
}

// Aggregate counts the distinct values of a categorical column and their
// percentage of the total row count. Categories come back in order of first
// appearance, which is stable across repeated calls on the same table.
// Colors resolve through the same category color mapping the map layers use.
func Aggregate(t *Table, col string, colors map[string]string) ([]CategoryStat, error) {
	if !t.HasColumn(col) {
		return nil, inputErrorf("statistics column %q not found in input", col)
	}
	total := t.RowCount()
	if total == 0 {
		return []CategoryStat{}, nil
	}
	counts := map[string]int{}
	order := t.DistinctValues(col)
	for i := 0; i < total; i++ {
		counts[t.StringValue(i, col)]++
	}
	ret := make([]CategoryStat, 0, len(order))
	for _, cat := range order {
		color, ok := colors[cat]
		if !ok {
			color = ChartFallbackColor
		}
		ret = append(ret, CategoryStat{
			Category: cat,
			Count:    counts[cat],
			Percent:  float64(counts[cat]) * 100 / float64(total),
			Color:    color,
		})
	}
	return ret, nil
}
