package pipeline

import (
	"os"

	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"gopkg.in/yaml.v3"
)

// DefaultMarkerColor is the fallback for unmapped categories and for
// legend-less time features.
const DefaultMarkerColor = "blue"

// Legend is the tagged "legend requested" variant: a nil *Legend means no
// legend column was chosen. Color resolution lives in one place so the
// default fallback is a single rule.
type Legend struct {
	Column string            `yaml:"column"`
	Colors map[string]string `yaml:"colors"`
	// Marker is "circle" (default) or "pin".
	Marker string `yaml:"marker"`
}

// ColorOf resolves a category color, safe to call on a nil receiver.
func (l *Legend) ColorOf(category string) string {
	if l == nil {
		return DefaultMarkerColor
	}
	if c, ok := l.Colors[category]; ok {
		return c
	}
	return DefaultMarkerColor
}

// LayerScope selects which rows feed the heat and timestamped layers.
// Markers and statistics always use the filtered rows; whether heat and
// time layers do too is an explicit choice.
type LayerScope int

const (
	// ScopeFiltered feeds heat/time layers from the filtered rows (default).
	ScopeFiltered LayerScope = iota
	// ScopeAll feeds heat/time layers from every row, ignoring filters.
	ScopeAll
)

func ParseLayerScope(s string) (LayerScope, error) {
	switch s {
	case "", "filtered":
		return ScopeFiltered, nil
	case "all":
		return ScopeAll, nil
	default:
		return ScopeFiltered, configErrorf("unknown layer scope %q, expect \"filtered\" or \"all\"", s)
	}
}

// Request is one immutable visualization request; the pipeline reads it and
// never writes it, so re-running with the same request is side effect free.
type Request struct {
	Input      string `yaml:"input"`
	Delimiter  string `yaml:"delimiter"`
	XColumn    string `yaml:"xColumn"`
	YColumn    string `yaml:"yColumn"`
	DateColumn string `yaml:"dateColumn"`
	SourceEPSG int    `yaml:"sourceEPSG"`

	Filters dataset.FilterSpec `yaml:"filters"`
	Legend  *Legend            `yaml:"legend"`

	BaseLayer  string `yaml:"baseLayer"`
	Heatmap    bool   `yaml:"heatmap"`
	TimeSeries bool   `yaml:"timeSeries"`
	LayerScope string `yaml:"layerScope"`

	StatsColumn string `yaml:"statsColumn"`
	PageTitle   string `yaml:"pageTitle"`
	LogoPath    string `yaml:"logo"`

	// Optional explicit initial view; when InitialZoom is zero the map
	// auto-fits the bound of the added points.
	InitialLat  float64 `yaml:"initialLat"`
	InitialLon  float64 `yaml:"initialLon"`
	InitialZoom int     `yaml:"initialZoom"`
}

func DefaultRequest() Request {
	return Request{
		XColumn:    "POINT_X",
		YColumn:    "POINT_Y",
		SourceEPSG: 31982,
		BaseLayer:  "OpenStreetMap",
		LayerScope: "filtered",
		PageTitle:  "Mapa Interativo",
	}
}

// LoadRequest reads a YAML request file over the defaults.
func LoadRequest(path string) (Request, error) {
	req := DefaultRequest()
	data, err := os.ReadFile(path)
	if err != nil {
		return req, configErrorf("cannot read request file %q: %s", path, err.Error())
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, configErrorf("invalid request file %q: %s", path, err.Error())
	}
	return req, nil
}

func (r *Request) Validate() error {
	if r.Input == "" {
		return configErrorf("no input file given")
	}
	if r.XColumn == "" || r.YColumn == "" {
		return configErrorf("coordinate columns are required")
	}
	if r.TimeSeries && r.DateColumn == "" {
		return configErrorf("time-series layer requires a date column")
	}
	if r.Legend != nil && r.Legend.Column == "" {
		return configErrorf("legend requires a column")
	}
	if r.Legend != nil {
		switch r.Legend.Marker {
		case "", "circle", "pin":
		default:
			return configErrorf("unknown marker style %q, expect \"circle\" or \"pin\"", r.Legend.Marker)
		}
	}
	if _, err := ParseLayerScope(r.LayerScope); err != nil {
		return err
	}
	return nil
}
