package dataset_test

import (
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/stretchr/testify/require"
)

func TestFilterSubset(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(dataset.FilterSpec{"Tipo": {"A"}})
	require.NoError(t, err)
	require.Equal(t, 2, out.RowCount())
	require.Equal(t, "p1", out.StringValue(0, "Name"))
	require.Equal(t, "p3", out.StringValue(1, "Name"))

	// receiver untouched
	require.Equal(t, 3, tbl.RowCount())
}

func TestFilterFullSetIsNoOp(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(dataset.FilterSpec{"Tipo": {"A", "B"}})
	require.NoError(t, err)
	require.Equal(t, tbl.RowCount(), out.RowCount())
	for i := 0; i < tbl.RowCount(); i++ {
		require.Equal(t, tbl.Row(i), out.Row(i))
	}
}

func TestFilterSupersetIsNoOp(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(dataset.FilterSpec{"Tipo": {"A", "B", "C"}})
	require.NoError(t, err)
	require.Equal(t, tbl.RowCount(), out.RowCount())
}

func TestFilterEmptySetExcludesAll(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(dataset.FilterSpec{"Tipo": {}})
	require.NoError(t, err)
	require.Equal(t, 0, out.RowCount())
	require.Equal(t, tbl.Columns(), out.Columns())
}

func TestFilterAndAcrossColumns(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(dataset.FilterSpec{
		"Tipo": {"A"},
		"Name": {"p3", "p2"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.RowCount())
	require.Equal(t, "p3", out.StringValue(0, "Name"))
}

func TestFilterUnknownColumn(t *testing.T) {
	tbl := surveyTable(t)
	_, err := tbl.Filter(dataset.FilterSpec{"Categoria": {"A"}})
	require.Error(t, err)
	var ierr *dataset.InputError
	require.ErrorAs(t, err, &ierr)
}

func TestFilterNilSpec(t *testing.T) {
	tbl := surveyTable(t)
	out, err := tbl.Filter(nil)
	require.NoError(t, err)
	require.Equal(t, tbl.RowCount(), out.RowCount())
}
