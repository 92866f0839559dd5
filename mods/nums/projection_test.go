package nums_test

import (
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/nums"
	"github.com/stretchr/testify/require"
)

func TestTransformerKnownRange(t *testing.T) {
	forward, err := nums.Transformer(31982)
	require.NoError(t, err)

	// zone 22S, a point in northern Paraná
	lon, lat, _ := forward(680000, 7460000, 0)
	require.Greater(t, lat, -24.0)
	require.Less(t, lat, -22.0)
	require.Greater(t, lon, -50.0)
	require.Less(t, lon, -48.5)
}

func TestTransformerRoundTrip(t *testing.T) {
	for _, code := range nums.SupportedEPSG() {
		forward, err := nums.Transformer(code)
		require.NoError(t, err)
		inverse, err := nums.InverseTransformer(code)
		require.NoError(t, err)

		x0, y0 := 500000.0, 7300000.0
		lon, lat, _ := forward(x0, y0, 0)
		x1, y1, _ := inverse(lon, lat, 0)
		require.InDelta(t, x0, x1, 0.01, "EPSG:%d easting", code)
		require.InDelta(t, y0, y1, 0.01, "EPSG:%d northing", code)
	}
}

func TestTransformerOrderPreserved(t *testing.T) {
	forward, err := nums.Transformer(31982)
	require.NoError(t, err)

	xs := []float64{400000, 500000, 600000, 700000}
	lons := make([]float64, len(xs))
	for i, x := range xs {
		lons[i], _, _ = forward(x, 7400000, 0)
	}
	for i := 1; i < len(lons); i++ {
		require.Greater(t, lons[i], lons[i-1])
	}
}

func TestTransformerUnsupported(t *testing.T) {
	_, err := nums.Transformer(4326)
	require.Error(t, err)
	var perr *nums.ProjectionError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 4326, perr.Code)
	require.Equal(t, "projection EPSG:4326 unsupported source CRS", err.Error())

	_, err = nums.InverseTransformer(99999)
	require.Error(t, err)
}

func TestSupportedEPSG(t *testing.T) {
	require.Equal(t, []int{31981, 31982, 31983}, nums.SupportedEPSG())
}
