package nums

import (
	"fmt"

	"github.com/wroge/wgs84"
)

type spheroid struct {
	a, fi float64
}

func (s spheroid) A() float64 {
	return s.a
}
func (s spheroid) Fi() float64 {
	return s.fi
}

// TransformFunc converts one coordinate triplet, height is carried through.
type TransformFunc = func(a, b, c float64) (a2, b2, c2 float64)

type ProjectionError struct {
	Code   int
	Reason string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("projection EPSG:%d %s", e.Code, e.Reason)
}

// SIRGAS 2000 / UTM, southern zones used by Brazilian field surveys.
// SPHEROID["GRS 1980",6378137,298.257222101]
//
// EPSG:31981 +proj=utm +zone=21 +south +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs
// EPSG:31982 +proj=utm +zone=22 +south +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs
// EPSG:31983 +proj=utm +zone=23 +south +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs
var utmSouthZones = map[int]float64{
	31981: -57,
	31982: -51,
	31983: -45,
}

func sirgas2000(code int, inverse bool) TransformFunc {
	lon0 := utmSouthZones[code]
	datum := wgs84.Datum{
		Spheroid: spheroid{a: 6378137, fi: 298.257222101},
		Area: wgs84.AreaFunc(func(lon, lat float64) bool {
			if lon < lon0-3.5 || lon > lon0+3.5 || lat < -36 || lat > 3 {
				return false
			}
			return true
		}),
	}
	proj := datum.TransverseMercator(lon0, 0, 0.9996, 500000, 10000000)
	epsg := wgs84.EPSG()
	epsg.Add(code, proj)
	if inverse {
		return wgs84.Transform(wgs84.WGS84().LonLat(), epsg.Code(code))
	}
	return wgs84.Transform(epsg.Code(code), wgs84.WGS84().LonLat())
}

// Transformer returns the forward transform from the projected CRS identified
// by the EPSG code to WGS84 geographic degrees, called as (easting, northing, 0)
// and returning (lon, lat, 0).
func Transformer(code int) (TransformFunc, error) {
	if _, ok := utmSouthZones[code]; !ok {
		return nil, &ProjectionError{Code: code, Reason: "unsupported source CRS"}
	}
	return sirgas2000(code, false), nil
}

// InverseTransformer returns the WGS84 lon/lat to projected CRS transform,
// the inverse of Transformer for the same code.
func InverseTransformer(code int) (TransformFunc, error) {
	if _, ok := utmSouthZones[code]; !ok {
		return nil, &ProjectionError{Code: code, Reason: "unsupported destination CRS"}
	}
	return sirgas2000(code, true), nil
}

// SupportedEPSG lists the registered projected CRS codes.
func SupportedEPSG() []int {
	return []int{31981, 31982, 31983}
}
