package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Columns added to the working table by the projection stage.
const (
	LonColumn = "Longitude"
	LatColumn = "Latitude"
)

func validLonLat(lon, lat float64) bool {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return false
	}
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// PointFeatures converts every row with a valid geographic coordinate into a
// GeoJSON point feature carrying the row attributes as properties. A table
// with zero usable rows yields an EmptyResultError; callers treat it as a
// reported skip for point-based layers, not a fatal failure.
func PointFeatures(t *dataset.Table) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	cols := t.Columns()
	for i := 0; i < t.RowCount(); i++ {
		lon, okLon := t.FloatValue(i, LonColumn)
		lat, okLat := t.FloatValue(i, LatColumn)
		if !okLon || !okLat || !validLonLat(lon, lat) {
			continue
		}
		f := geojson.NewFeature(orb.Point{lon, lat})
		for _, col := range cols {
			if col == LonColumn || col == LatColumn {
				continue
			}
			f.Properties[col] = t.StringValue(i, col)
		}
		fc.Append(f)
	}
	if len(fc.Features) == 0 {
		return nil, &EmptyResultError{What: "point features"}
	}
	return fc, nil
}

// TimeFeatures builds the timestamped feature collection: only rows with a
// parsed timestamp participate, rows without one stay in the general feature
// set but never appear here. Features come back in ascending time order with
// the properties the animated layer expects: time, popup, style.color.
func TimeFeatures(t *dataset.Table, dateCol string, legend *Legend) *geojson.FeatureCollection {
	type timed struct {
		ts time.Time
		f  *geojson.Feature
	}
	list := []timed{}
	for i := 0; i < t.RowCount(); i++ {
		ts, ok := t.TimeValue(i, dateCol)
		if !ok {
			continue
		}
		lon, okLon := t.FloatValue(i, LonColumn)
		lat, okLat := t.FloatValue(i, LatColumn)
		if !okLon || !okLat || !validLonLat(lon, lat) {
			continue
		}
		label := ""
		if legend != nil {
			label = t.StringValue(i, legend.Column)
		}
		f := geojson.NewFeature(orb.Point{lon, lat})
		f.Properties["time"] = ts.Format("2006-01-02T15:04:05")
		f.Properties["popup"] = label
		f.Properties["style"] = map[string]any{"color": legend.ColorOf(label)}
		list = append(list, timed{ts: ts, f: f})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ts.Before(list[j].ts)
	})
	fc := geojson.NewFeatureCollection()
	for _, item := range list {
		fc.Append(item.f)
	}
	return fc
}
