package nums_test

import (
	"encoding/json"
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/nums"
	"github.com/stretchr/testify/require"
)

func TestLatLon(t *testing.T) {
	ll := nums.NewLatLon(-23.1, -51.5)
	require.Equal(t, "[-23.1,-51.5]", ll.String())
	require.Equal(t, []float64{-23.1, -51.5}, ll.Array())
	require.True(t, ll.InRange())
	require.False(t, nums.NewLatLon(-95, 0).InRange())
	require.False(t, nums.NewLatLon(0, 190).InRange())

	b, err := json.Marshal(ll)
	require.NoError(t, err)
	require.JSONEq(t, "[-23.1,-51.5]", string(b))
}

func TestLatLonBound(t *testing.T) {
	b := &nums.LatLonBound{}
	require.True(t, b.IsEmpty())
	require.Equal(t, "[]", b.String())
	require.Nil(t, b.Center())

	b = b.Extend(nums.NewLatLon(-23, -51))
	require.False(t, b.IsEmpty())
	require.Equal(t, "[[-23,-51],[-23,-51]]", b.String())

	b2 := b.Extend(nums.NewLatLon(-20, -49))
	require.Equal(t, "[[-23,-51],[-20,-49]]", b2.String())
	require.Equal(t, "[-21.5,-50]", b2.Center().String())
	// extending returns a new bound, the receiver stays intact
	require.Equal(t, "[[-23,-51],[-23,-51]]", b.String())

	b3 := nums.NewLatLonBound(nums.NewLatLon(-23, -51), nums.NewLatLon(-25, -47))
	require.Equal(t, "[[-25,-51],[-23,-47]]", b3.String())
}

func TestGeoCircleMarker(t *testing.T) {
	mk := nums.NewGeoCircleMarker(nums.NewLatLon(-23, -51), 5, map[string]any{
		"color": "#ff0000",
	})
	require.Equal(t, "circleMarker", mk.Marker())
	require.Equal(t, [][]float64{{-23, -51}}, mk.Coordinates())
	require.Equal(t, "#ff0000", mk.Properties()["color"])
	require.Equal(t, 5.0, mk.Properties()["radius"])
}
