package dataset_test

import (
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tbl := surveyTable(t)
	stats, err := dataset.Aggregate(tbl, "Tipo", map[string]string{"A": "#ff0000"})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	require.Equal(t, "A", stats[0].Category)
	require.Equal(t, 2, stats[0].Count)
	require.InDelta(t, 66.666, stats[0].Percent, 0.01)
	require.Equal(t, "#ff0000", stats[0].Color)

	require.Equal(t, "B", stats[1].Category)
	require.Equal(t, 1, stats[1].Count)
	require.InDelta(t, 33.333, stats[1].Percent, 0.01)
	require.Equal(t, dataset.ChartFallbackColor, stats[1].Color)

	sum := 0.0
	for _, st := range stats {
		sum += st.Percent
	}
	require.InDelta(t, 100.0, sum, 0.01)
}

func TestAggregateEmptyTable(t *testing.T) {
	tbl := dataset.NewTable([]string{"Tipo"})
	stats, err := dataset.Aggregate(tbl, "Tipo", nil)
	require.NoError(t, err)
	require.Empty(t, stats)
}

func TestAggregateMissingColumn(t *testing.T) {
	tbl := surveyTable(t)
	_, err := dataset.Aggregate(tbl, "Categoria", nil)
	require.Error(t, err)
}
