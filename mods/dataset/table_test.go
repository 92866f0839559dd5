package dataset_test

import (
	"testing"
	"time"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/stretchr/testify/require"
)

func surveyTable(t *testing.T) *dataset.Table {
	tbl := dataset.NewTable([]string{"Name", "Tipo", "POINT_X", "POINT_Y"})
	rows := [][]any{
		{"p1", "A", "680000,5", "7460000,2"},
		{"p2", "B", "681000.0", "7461000.0"},
		{"p3", "A", "682000,75", "7462000,25"},
	}
	for _, row := range rows {
		require.NoError(t, tbl.Append(row))
	}
	return tbl
}

func TestTableBasics(t *testing.T) {
	tbl := surveyTable(t)
	require.Equal(t, []string{"Name", "Tipo", "POINT_X", "POINT_Y"}, tbl.Columns())
	require.Equal(t, 3, tbl.RowCount())
	require.True(t, tbl.HasColumn("Tipo"))
	require.False(t, tbl.HasColumn("tipo"))

	require.Error(t, tbl.Append([]any{"short"}))

	v, ok := tbl.Value(1, "Tipo")
	require.True(t, ok)
	require.Equal(t, "B", v)
	_, ok = tbl.Value(9, "Tipo")
	require.False(t, ok)

	require.Equal(t, []string{"A", "B"}, tbl.DistinctValues("Tipo"))
}

func TestTableStringValue(t *testing.T) {
	tbl := dataset.NewTable([]string{"c"})
	require.NoError(t, tbl.Append([]any{nil}))
	require.NoError(t, tbl.Append([]any{time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)}))
	require.NoError(t, tbl.Append([]any{12.5}))
	require.Equal(t, "", tbl.StringValue(0, "c"))
	require.Equal(t, "2024-05-01T10:30:00", tbl.StringValue(1, "c"))
	require.Equal(t, "12.5", tbl.StringValue(2, "c"))
}

func TestTableAddColumn(t *testing.T) {
	tbl := surveyTable(t)
	require.NoError(t, tbl.AddColumn("Longitude", []any{-49.1, -49.2, -49.3}))
	require.True(t, tbl.HasColumn("Longitude"))
	f, ok := tbl.FloatValue(1, "Longitude")
	require.True(t, ok)
	require.Equal(t, -49.2, f)

	require.Error(t, tbl.AddColumn("Longitude", []any{0.0, 0.0, 0.0}))
	require.Error(t, tbl.AddColumn("Latitude", []any{0.0}))
}

func TestTableClone(t *testing.T) {
	tbl := surveyTable(t)
	cp := tbl.Clone()
	cp.SetValue(0, "Tipo", "C")
	require.Equal(t, "A", tbl.StringValue(0, "Tipo"))
	require.Equal(t, "C", cp.StringValue(0, "Tipo"))
}
