package geomap

import "strings"

// BaseLayer is the closed set of supported base tile providers.
type BaseLayer int

const (
	OpenStreetMap BaseLayer = iota
	GoogleRoadmap
	GoogleSatellite
	GoogleTerrain
	EsriSatellite
	EsriStreet
)

var baseLayerNames = map[BaseLayer]string{
	OpenStreetMap:   "OpenStreetMap",
	GoogleRoadmap:   "GoogleRoadmap",
	GoogleSatellite: "GoogleSatellite",
	GoogleTerrain:   "GoogleTerrain",
	EsriSatellite:   "EsriSatellite",
	EsriStreet:      "EsriStreet",
}

var baseLayerTiles = map[BaseLayer]string{
	OpenStreetMap:   `https://tile.openstreetmap.org/{z}/{x}/{y}.png`,
	GoogleRoadmap:   `https://mt{s}.google.com/vt/lyrs=m&x={x}&y={y}&z={z}`,
	GoogleSatellite: `https://mt{s}.google.com/vt/lyrs=s&x={x}&y={y}&z={z}`,
	GoogleTerrain:   `https://mt{s}.google.com/vt/lyrs=p&x={x}&y={y}&z={z}`,
	EsriSatellite:   `https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}`,
	EsriStreet:      `https://server.arcgisonline.com/ArcGIS/rest/services/World_Street_Map/MapServer/tile/{z}/{y}/{x}`,
}

func (b BaseLayer) String() string {
	if n, ok := baseLayerNames[b]; ok {
		return n
	}
	return baseLayerNames[OpenStreetMap]
}

func (b BaseLayer) TileTemplate() string {
	if t, ok := baseLayerTiles[b]; ok {
		return t
	}
	return baseLayerTiles[OpenStreetMap]
}

// TileOption returns the javascript option literal for the tile layer,
// empty when the provider needs none.
func (b BaseLayer) TileOption() string {
	switch b {
	case GoogleRoadmap, GoogleSatellite, GoogleTerrain:
		return `{"subdomains": "0123", "maxZoom": 20}`
	default:
		return ""
	}
}

// ParseBaseLayer accepts both the enum names and common display spellings
// ("Google Maps", "ESRI Satellite", ...). An unrecognized name reports
// false; callers fall back to OpenStreetMap.
func ParseBaseLayer(name string) (BaseLayer, bool) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	switch key {
	case "openstreetmap", "osm":
		return OpenStreetMap, true
	case "googleroadmap", "googlemaps", "roadmap":
		return GoogleRoadmap, true
	case "googlesatellite", "satellite":
		return GoogleSatellite, true
	case "googleterrain", "terrain":
		return GoogleTerrain, true
	case "esrisatellite", "esriworldimagery":
		return EsriSatellite, true
	case "esristreet", "esriworldstreetmap":
		return EsriStreet, true
	}
	return OpenStreetMap, false
}
