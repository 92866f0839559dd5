package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Tiagofholanda/testeFITEC/mods/codec"
	"github.com/Tiagofholanda/testeFITEC/mods/codec/facility"
	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/Tiagofholanda/testeFITEC/mods/logging"
	"github.com/Tiagofholanda/testeFITEC/mods/nums"
	"github.com/paulmach/orb/geojson"
)

// Result is everything one visualization run produces. The scene is fully
// composed and ready to render; nothing in it refers back to pipeline state,
// so a later failed run cannot corrupt it.
type Result struct {
	Scene        *codec.GeoMap
	Filtered     *dataset.Table
	Stats        []dataset.CategoryStat
	Points       *geojson.FeatureCollection
	TimeFeatures *geojson.FeatureCollection
	Warnings     []string
}

// Run executes one visualization request start to finish: load, date parse,
// coordinate normalization, reprojection, attribute filtering, feature
// construction, layer composition and statistics. Input defects abort the
// run; missing data for optional layers only downgrades to a warning.
func Run(req Request, log logging.Log) (*Result, error) {
	if log == nil {
		log = logging.GetLog("pipeline")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	scope, _ := ParseLayerScope(req.LayerScope)

	res := &Result{}

	tbl, err := dataset.Load(req.Input, delimiterOf(req.Delimiter))
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d rows, %d columns from %s", tbl.RowCount(), len(tbl.Columns()), req.Input)

	if req.DateColumn != "" {
		warns, err := dataset.ParseDateColumn(tbl, req.DateColumn)
		if err != nil {
			return nil, err
		}
		for _, w := range warns {
			log.Warn(w)
		}
		res.Warnings = append(res.Warnings, warns...)
	}

	xs, ys, err := dataset.NormalizeCoordinates(tbl, req.XColumn, req.YColumn)
	if err != nil {
		return nil, err
	}

	forward, err := nums.Transformer(req.SourceEPSG)
	if err != nil {
		return nil, err
	}
	lons := make([]any, len(xs))
	lats := make([]any, len(ys))
	for i := range xs {
		lon, lat, _ := forward(xs[i], ys[i], 0)
		if !validLonLat(lon, lat) {
			return nil, &nums.ProjectionError{
				Code:   req.SourceEPSG,
				Reason: fmt.Sprintf("row %d transforms outside geographic range", i+1),
			}
		}
		lons[i] = lon
		lats[i] = lat
	}
	if err := tbl.AddColumn(LonColumn, lons); err != nil {
		return nil, err
	}
	if err := tbl.AddColumn(LatColumn, lats); err != nil {
		return nil, err
	}

	filtered, err := tbl.Filter(req.Filters)
	if err != nil {
		return nil, err
	}
	res.Filtered = filtered
	log.Debugf("filter kept %d of %d rows", filtered.RowCount(), tbl.RowCount())

	scopeTbl := filtered
	if scope == ScopeAll {
		scopeTbl = tbl
	}

	points, err := PointFeatures(scopeTbl)
	if err != nil {
		var empty *EmptyResultError
		if !errors.As(err, &empty) {
			return nil, err
		}
		log.Warn(err.Error())
		res.Warnings = append(res.Warnings, err.Error())
	} else {
		res.Points = points
	}

	base, known := codec.ParseBaseLayer(req.BaseLayer)
	if !known {
		w := fmt.Sprintf("unrecognized base layer %q, using OpenStreetMap", req.BaseLayer)
		log.Warn(w)
		res.Warnings = append(res.Warnings, w)
	}
	opts := []codec.Option{
		codec.Logger(&codecLogger{log: log}),
		codec.Title(req.PageTitle),
		codec.TileLayer(base),
	}
	if req.LogoPath != "" {
		if data, err := os.ReadFile(req.LogoPath); err != nil {
			w := fmt.Sprintf("cannot read logo %q: %s", req.LogoPath, err.Error())
			log.Warn(w)
			res.Warnings = append(res.Warnings, w)
		} else {
			opts = append(opts, codec.LogoImage(logoMime(req.LogoPath), data))
		}
	}
	if req.InitialZoom > 0 {
		opts = append(opts, codec.InitialLocation(nums.NewLatLon(req.InitialLat, req.InitialLon), req.InitialZoom))
	}
	gm := codec.NewGeoMap(opts...)

	if req.Heatmap {
		gm.SetHeatPoints(heatPoints(scopeTbl))
	}

	if req.TimeSeries {
		tf := TimeFeatures(scopeTbl, req.DateColumn, req.Legend)
		res.TimeFeatures = tf
		gm.SetTimeline(tf)
	}

	if req.Legend != nil {
		addMarkers(gm, filtered, req.Legend)
		entries := []codec.LegendEntry{}
		for _, cat := range filtered.DistinctValues(req.Legend.Column) {
			entries = append(entries, codec.LegendEntry{Label: cat, Color: req.Legend.ColorOf(cat)})
		}
		gm.SetLegend(entries)
	}

	res.Warnings = append(res.Warnings, gm.Skips()...)

	if req.StatsColumn != "" {
		var colors map[string]string
		if req.Legend != nil {
			colors = req.Legend.Colors
		}
		stats, err := dataset.Aggregate(filtered, req.StatsColumn, colors)
		if err != nil {
			return nil, err
		}
		res.Stats = stats
	}

	res.Scene = gm
	return res, nil
}

func heatPoints(t *dataset.Table) []*nums.LatLon {
	pts := []*nums.LatLon{}
	for i := 0; i < t.RowCount(); i++ {
		lon, okLon := t.FloatValue(i, LonColumn)
		lat, okLat := t.FloatValue(i, LatColumn)
		if !okLon || !okLat || !validLonLat(lon, lat) {
			continue
		}
		pts = append(pts, nums.NewLatLon(lat, lon))
	}
	return pts
}

// addMarkers appends one marker per filtered row, colored through the
// legend's category color map; the category value becomes the popup.
func addMarkers(gm *codec.GeoMap, t *dataset.Table, legend *Legend) {
	for i := 0; i < t.RowCount(); i++ {
		lon, okLon := t.FloatValue(i, LonColumn)
		lat, okLat := t.FloatValue(i, LatColumn)
		if !okLon || !okLat || !validLonLat(lon, lat) {
			continue
		}
		label := t.StringValue(i, legend.Column)
		ll := nums.NewLatLon(lat, lon)
		if legend.Marker == "pin" {
			gm.AddMarker(nums.NewGeoPointMarker(ll, map[string]any{"popup": label}))
			continue
		}
		color := legend.ColorOf(label)
		gm.AddMarker(nums.NewGeoCircleMarker(ll, 5, map[string]any{
			"color":       color,
			"fill":        true,
			"fillColor":   color,
			"fillOpacity": 0.7,
			"popup":       label,
		}))
	}
}

func delimiterOf(s string) rune {
	if s == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func logoMime(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// codecLogger bridges the logging package into the codec's logger facility.
type codecLogger struct {
	log logging.Log
}

var _ facility.Logger = &codecLogger{}

func (c *codecLogger) Logf(format string, args ...any)      { c.log.Infof(format, args...) }
func (c *codecLogger) LogDebugf(format string, args ...any) { c.log.Debugf(format, args...) }
func (c *codecLogger) LogWarnf(format string, args ...any)  { c.log.Warnf(format, args...) }
func (c *codecLogger) LogErrorf(format string, args ...any) { c.log.Errorf(format, args...) }
