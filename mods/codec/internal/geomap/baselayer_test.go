package geomap_test

import (
	"testing"

	"github.com/Tiagofholanda/testeFITEC/mods/codec/internal/geomap"
	"github.com/stretchr/testify/require"
)

func TestParseBaseLayer(t *testing.T) {
	tests := []struct {
		name   string
		expect geomap.BaseLayer
		known  bool
	}{
		{"OpenStreetMap", geomap.OpenStreetMap, true},
		{"osm", geomap.OpenStreetMap, true},
		{"Google Maps", geomap.GoogleRoadmap, true},
		{"googleroadmap", geomap.GoogleRoadmap, true},
		{"Google Satellite", geomap.GoogleSatellite, true},
		{"Google Terrain", geomap.GoogleTerrain, true},
		{"ESRI Satellite", geomap.EsriSatellite, true},
		{"esri_street", geomap.EsriStreet, true},
		{"mapbox", geomap.OpenStreetMap, false},
		{"", geomap.OpenStreetMap, false},
	}
	for _, tt := range tests {
		actual, known := geomap.ParseBaseLayer(tt.name)
		require.Equal(t, tt.expect, actual, "name=%q", tt.name)
		require.Equal(t, tt.known, known, "name=%q", tt.name)
	}
}

func TestTileTemplates(t *testing.T) {
	require.Contains(t, geomap.OpenStreetMap.TileTemplate(), "tile.openstreetmap.org")
	require.Contains(t, geomap.GoogleSatellite.TileTemplate(), "lyrs=s")
	require.Contains(t, geomap.EsriSatellite.TileTemplate(), "World_Imagery")
	require.Empty(t, geomap.OpenStreetMap.TileOption())
	require.Contains(t, geomap.GoogleRoadmap.TileOption(), "subdomains")
}
