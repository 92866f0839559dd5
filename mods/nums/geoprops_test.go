package nums_test

import (
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/nums"
	"github.com/stretchr/testify/require"
)

func TestGeoPropertiesMarshalJS(t *testing.T) {
	props := nums.GeoProperties{
		"fillOpacity": 0.7,
		"color":       "#ff0000",
		"fill":        true,
		"radius":      5,
	}
	s, err := props.MarshalJS()
	require.NoError(t, err)
	require.Equal(t, `{color:"#ff0000",fill:true,fillOpacity:0.7,radius:5}`, s)

	s, err = nums.GeoProperties{}.MarshalJS()
	require.NoError(t, err)
	require.Equal(t, "{}", s)
}

func TestGeoPropertiesPopString(t *testing.T) {
	props := nums.GeoProperties{"popup": "A", "radius": 5}

	v, ok := props.PopString("popup")
	require.True(t, ok)
	require.Equal(t, "A", v)
	require.NotContains(t, props, "popup")

	v, ok = props.PopString("radius")
	require.True(t, ok)
	require.Equal(t, "5", v)

	_, ok = props.PopString("missing")
	require.False(t, ok)
}

func TestGeoPropertiesCopy(t *testing.T) {
	props := nums.GeoProperties{"color": "blue"}
	props.Copy(map[string]any{"color": "#ff0000", "radius": 5})
	require.Equal(t, "#ff0000", props["color"])
	require.Equal(t, 5, props["radius"])
}
