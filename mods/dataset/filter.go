package dataset

// FilterSpec maps a column name to the set of allowed values.
// A column absent from the spec imposes no constraint; an empty allowed
// set excludes every row.
type FilterSpec map[string][]string

// Filter returns the subset of rows whose value in every constrained column
// is a member of that column's allowed set (logical AND across columns).
// The receiver is never modified. A constraint whose allowed set equals the
// full distinct value set of its column is skipped entirely, so such a
// filter is an exact no-op preserving row order and count.
func (t *Table) Filter(spec FilterSpec) (*Table, error) {
	type constraint struct {
		col     string
		allowed map[string]bool
	}
	constraints := []constraint{}
	for col, values := range spec {
		if !t.HasColumn(col) {
			return nil, inputErrorf("filter column %q not found in input", col)
		}
		allowed := make(map[string]bool, len(values))
		for _, v := range values {
			allowed[v] = true
		}
		if coversAll(allowed, t.DistinctValues(col)) {
			continue
		}
		constraints = append(constraints, constraint{col: col, allowed: allowed})
	}

	ret := NewTable(t.columns)
	for i := range t.rows {
		keep := true
		for _, c := range constraints {
			if !c.allowed[t.StringValue(i, c.col)] {
				keep = false
				break
			}
		}
		if keep {
			ret.rows = append(ret.rows, append([]any{}, t.rows[i]...))
		}
	}
	return ret, nil
}

func coversAll(allowed map[string]bool, distinct []string) bool {
	if len(distinct) == 0 {
		return true
	}
	if len(allowed) == 0 {
		return false
	}
	for _, v := range distinct {
		if !allowed[v] {
			return false
		}
	}
	return true
}
