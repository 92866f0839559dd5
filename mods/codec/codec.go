// Package codec is the public face of the scene renderers. The composer
// implementations live under internal/ and are reached through the aliases
// and options here.
package codec

import (
	"io"

	"github.com/Tiagofholanda/testeFITEC/mods/codec/facility"
	"github.com/Tiagofholanda/testeFITEC/mods/codec/internal/geomap"
	"github.com/Tiagofholanda/testeFITEC/mods/nums"
)

// GeoMap is the Leaflet scene composer.
type GeoMap = geomap.GeoMap

type BaseLayer = geomap.BaseLayer

type Layer = geomap.Layer

type LegendEntry = geomap.LegendEntry

const (
	OpenStreetMap   = geomap.OpenStreetMap
	GoogleRoadmap   = geomap.GoogleRoadmap
	GoogleSatellite = geomap.GoogleSatellite
	GoogleTerrain   = geomap.GoogleTerrain
	EsriSatellite   = geomap.EsriSatellite
	EsriStreet      = geomap.EsriStreet
)

func ParseBaseLayer(name string) (BaseLayer, bool) {
	return geomap.ParseBaseLayer(name)
}

// SceneEncoder is the rendering contract of a composed scene: Open, Flush
// while composing, Close renders to the output stream.
type SceneEncoder interface {
	Open() error
	Close()
	Flush(heading bool)
	ContentType() string
	SetOutputStream(o io.Writer)
}

var _ SceneEncoder = &geomap.GeoMap{}

type Option func(enc any)

// NewGeoMap builds a scene composer and applies the options.
func NewGeoMap(opts ...Option) *GeoMap {
	ret := geomap.New()
	for _, op := range opts {
		op(ret)
	}
	return ret
}

type CanSetLogger interface {
	SetLogger(l facility.Logger)
}

func Logger(l facility.Logger) Option {
	return func(enc any) {
		if e, ok := enc.(CanSetLogger); ok {
			e.SetLogger(l)
		}
	}
}

type CanSetPageTitle interface {
	SetPageTitle(title string)
}

func Title(title string) Option {
	return func(enc any) {
		if e, ok := enc.(CanSetPageTitle); ok {
			e.SetPageTitle(title)
		}
	}
}

type CanSetBaseLayer interface {
	SetBaseLayer(layer geomap.BaseLayer)
}

func TileLayer(layer BaseLayer) Option {
	return func(enc any) {
		if e, ok := enc.(CanSetBaseLayer); ok {
			e.SetBaseLayer(layer)
		}
	}
}

type CanSetLogoImage interface {
	SetLogoImage(mime string, data []byte)
}

func LogoImage(mime string, data []byte) Option {
	return func(enc any) {
		if e, ok := enc.(CanSetLogoImage); ok {
			e.SetLogoImage(mime, data)
		}
	}
}

type CanSetInitialLocation interface {
	SetInitialLocation(latlon *nums.LatLon, zoomLevel int)
}

func InitialLocation(latlon *nums.LatLon, zoomLevel int) Option {
	return func(enc any) {
		if e, ok := enc.(CanSetInitialLocation); ok {
			e.SetInitialLocation(latlon, zoomLevel)
		}
	}
}
