package dataset_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	src := strings.Join([]string{
		"Name,Tipo,POINT_X,POINT_Y",
		`p1,A,"680000,5","7460000,2"`,
		"p2,B,681000.0,7461000.0",
		"p3,A",
	}, "\n")
	tbl, err := dataset.LoadCSV(strings.NewReader(src), ',')
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Tipo", "POINT_X", "POINT_Y"}, tbl.Columns())
	require.Equal(t, 3, tbl.RowCount())
	require.Equal(t, "680000,5", tbl.StringValue(0, "POINT_X"))
	// short row padded with empty cells
	require.Equal(t, "", tbl.StringValue(2, "POINT_X"))
}

func TestLoadCSVSemicolon(t *testing.T) {
	src := "a;b\n1;2\n"
	tbl, err := dataset.LoadCSV(strings.NewReader(src), ';')
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, tbl.Columns())
	require.Equal(t, "2", tbl.StringValue(0, "b"))
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := dataset.LoadCSV(strings.NewReader(""), ',')
	require.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]any{
		{"Name", "Tipo", "POINT_X", "POINT_Y"},
		{"p1", "A", "680000,5", "7460000,2"},
		{"p2", "B", "681000", "7461000"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	tbl, err := dataset.Load(path, ',')
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Tipo", "POINT_X", "POINT_Y"}, tbl.Columns())
	require.Equal(t, 2, tbl.RowCount())
	require.Equal(t, "680000,5", tbl.StringValue(0, "POINT_X"))
}

func TestLoadUnsupported(t *testing.T) {
	_, err := dataset.Load("survey.pdf", ',')
	require.Error(t, err)
	var ierr *dataset.InputError
	require.ErrorAs(t, err, &ierr)

	_, err = dataset.Load("no-such-file.csv", ',')
	require.Error(t, err)
}
