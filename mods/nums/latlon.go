package nums

import (
	"encoding/json"
	"fmt"
)

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewLatLon(lat, lon float64) *LatLon {
	return &LatLon{Lat: lat, Lon: lon}
}

func (ll *LatLon) String() string {
	return fmt.Sprintf("[%v,%v]", ll.Lat, ll.Lon)
}

func (ll *LatLon) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{ll.Lat, ll.Lon})
}

func (ll *LatLon) Array() []float64 {
	return []float64{ll.Lat, ll.Lon}
}

// InRange returns true when the coordinate is a valid geographic position,
// longitude in [-180,180] and latitude in [-90,90].
func (ll *LatLon) InRange() bool {
	return ll.Lon >= -180 && ll.Lon <= 180 && ll.Lat >= -90 && ll.Lat <= 90
}

// LatLonBound is the rectangular bound of a set of coordinates.
type LatLonBound struct {
	Min *LatLon
	Max *LatLon
}

func NewLatLonBound(pts ...*LatLon) *LatLonBound {
	b := &LatLonBound{}
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

func (b *LatLonBound) IsEmpty() bool {
	return b.Min == nil || b.Max == nil
}

func (b *LatLonBound) Extend(pt *LatLon) *LatLonBound {
	if pt == nil {
		return b
	}
	if b.IsEmpty() {
		return &LatLonBound{
			Min: NewLatLon(pt.Lat, pt.Lon),
			Max: NewLatLon(pt.Lat, pt.Lon),
		}
	}
	ret := &LatLonBound{
		Min: NewLatLon(b.Min.Lat, b.Min.Lon),
		Max: NewLatLon(b.Max.Lat, b.Max.Lon),
	}
	if pt.Lat < ret.Min.Lat {
		ret.Min.Lat = pt.Lat
	}
	if pt.Lon < ret.Min.Lon {
		ret.Min.Lon = pt.Lon
	}
	if pt.Lat > ret.Max.Lat {
		ret.Max.Lat = pt.Lat
	}
	if pt.Lon > ret.Max.Lon {
		ret.Max.Lon = pt.Lon
	}
	return ret
}

func (b *LatLonBound) Center() *LatLon {
	if b.IsEmpty() {
		return nil
	}
	return NewLatLon((b.Min.Lat+b.Max.Lat)/2, (b.Min.Lon+b.Max.Lon)/2)
}

func (b *LatLonBound) String() string {
	if b.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%s,%s]", b.Min.String(), b.Max.String())
}
