package nums

// Geography is a geometry in "lat,lon" order with render properties.
type Geography interface {
	Properties() GeoProperties
	Coordinates() [][]float64
}

// Marker: point, circle
type GeoMarker interface {
	Marker() string
	Properties() GeoProperties
	Coordinates() [][]float64
}

var (
	_ Geography = &SingleLatLon{}
	_ Geography = &Circle{}
	_ GeoMarker = GeoPointMarker{}
	_ GeoMarker = GeoCircleMarker{}
)

type SingleLatLon struct {
	typ        string
	point      *LatLon
	properties GeoProperties
}

func (sp *SingleLatLon) Coordinates() [][]float64 {
	return [][]float64{{sp.point.Lat, sp.point.Lon}}
}

func (sp *SingleLatLon) Properties() GeoProperties {
	return sp.properties
}

type GeoPoint = *SingleLatLon

func NewGeoPoint(ll *LatLon, props map[string]any) GeoPoint {
	ret := &SingleLatLon{typ: "Point", point: ll, properties: GeoProperties{}}
	ret.properties.Copy(props)
	return ret
}

type Circle struct {
	center     *LatLon
	radius     float64
	properties GeoProperties
}

type GeoCircle = *Circle

func NewGeoCircle(center *LatLon, radius float64, props map[string]any) GeoCircle {
	ret := &Circle{center: center, radius: radius, properties: GeoProperties{}}
	ret.properties.Copy(props)
	if _, hasRadius := ret.properties["radius"]; !hasRadius {
		ret.properties["radius"] = radius
	}
	return ret
}

func (cr *Circle) Coordinates() [][]float64 {
	return [][]float64{{cr.center.Lat, cr.center.Lon}}
}

func (cr *Circle) Properties() GeoProperties {
	return cr.properties
}

type GeoPointMarker struct {
	GeoPoint
}

func NewGeoPointMarker(ll *LatLon, props map[string]any) GeoPointMarker {
	return GeoPointMarker{NewGeoPoint(ll, props)}
}

func (gm GeoPointMarker) Marker() string {
	return "marker"
}

type GeoCircleMarker struct {
	GeoCircle
}

func NewGeoCircleMarker(center *LatLon, radius float64, props map[string]any) GeoCircleMarker {
	return GeoCircleMarker{GeoCircle: NewGeoCircle(center, radius, props)}
}

func (cm GeoCircleMarker) Marker() string {
	return "circleMarker"
}
