package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/pipeline"
	"github.com/stretchr/testify/require"
)

func TestDefaultRequest(t *testing.T) {
	req := pipeline.DefaultRequest()
	require.Equal(t, "POINT_X", req.XColumn)
	require.Equal(t, "POINT_Y", req.YColumn)
	require.Equal(t, 31982, req.SourceEPSG)
	require.Equal(t, "OpenStreetMap", req.BaseLayer)
	require.Equal(t, "Mapa Interativo", req.PageTitle)
}

func TestLoadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.yaml")
	content := `
input: survey.csv
delimiter: ";"
xColumn: EASTING
dateColumn: Data
sourceEPSG: 31983
filters:
  Tipo: [A, B]
legend:
  column: Tipo
  colors:
    A: "#ff0000"
baseLayer: GoogleSatellite
heatmap: true
timeSeries: true
layerScope: all
statsColumn: Tipo
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	req, err := pipeline.LoadRequest(path)
	require.NoError(t, err)
	require.Equal(t, "survey.csv", req.Input)
	require.Equal(t, ";", req.Delimiter)
	require.Equal(t, "EASTING", req.XColumn)
	// untouched fields keep their defaults
	require.Equal(t, "POINT_Y", req.YColumn)
	require.Equal(t, 31983, req.SourceEPSG)
	require.Equal(t, []string{"A", "B"}, req.Filters["Tipo"])
	require.NotNil(t, req.Legend)
	require.Equal(t, "Tipo", req.Legend.Column)
	require.Equal(t, "#ff0000", req.Legend.ColorOf("A"))
	require.True(t, req.Heatmap)
	require.True(t, req.TimeSeries)
	require.Equal(t, "all", req.LayerScope)
	require.NoError(t, req.Validate())
}

func TestLoadRequestErrors(t *testing.T) {
	_, err := pipeline.LoadRequest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0644))
	_, err = pipeline.LoadRequest(path)
	require.Error(t, err)
}

func TestParseLayerScope(t *testing.T) {
	scope, err := pipeline.ParseLayerScope("")
	require.NoError(t, err)
	require.Equal(t, pipeline.ScopeFiltered, scope)

	scope, err = pipeline.ParseLayerScope("filtered")
	require.NoError(t, err)
	require.Equal(t, pipeline.ScopeFiltered, scope)

	scope, err = pipeline.ParseLayerScope("all")
	require.NoError(t, err)
	require.Equal(t, pipeline.ScopeAll, scope)

	_, err = pipeline.ParseLayerScope("everything")
	require.Error(t, err)
}

func TestLegendColorOf(t *testing.T) {
	var legend *pipeline.Legend
	require.Equal(t, pipeline.DefaultMarkerColor, legend.ColorOf("A"))

	legend = &pipeline.Legend{Column: "Tipo", Colors: map[string]string{"A": "#ff0000"}}
	require.Equal(t, "#ff0000", legend.ColorOf("A"))
	require.Equal(t, pipeline.DefaultMarkerColor, legend.ColorOf("B"))
}
