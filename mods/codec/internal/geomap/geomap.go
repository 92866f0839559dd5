package geomap

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Tiagofholanda/testeFITEC/mods/codec/facility"
	"github.com/Tiagofholanda/testeFITEC/mods/nums"
	"github.com/Tiagofholanda/testeFITEC/mods/util/snowflake"
	"github.com/paulmach/orb/geojson"
)

// GeoMap composes a Leaflet scene from point data and renders it as a
// self-contained HTML document or as a JSON scene description. Layers are
// emitted in a fixed order; later layers render above earlier ones.
type GeoMap struct {
	output io.Writer

	MapID  string
	Width  string
	Height string

	toJsonOutput bool

	logger facility.Logger

	InitialLatLon    *nums.LatLon
	Bound            *nums.LatLonBound
	InitialZoomLevel int

	PageTitle string

	baseLayer   BaseLayer
	logoDataURI string

	markers    []nums.GeoMarker
	heatPoints []*nums.LatLon
	timeline   *geojson.FeatureCollection
	legend     []LegendEntry

	JSCodes   []string
	JSAssets  []string
	CSSAssets []string

	layers []*Layer
	skips  []string
}

func New() *GeoMap {
	return &GeoMap{
		logger:    facility.DiscardLogger,
		MapID:     snowflake.Generate(),
		Width:     "100%",
		Height:    "600px",
		baseLayer: OpenStreetMap,
		Bound:     &nums.LatLonBound{},
	}
}

func (gm *GeoMap) ContentType() string {
	if gm.toJsonOutput {
		return "application/json"
	}
	return "text/html"
}

func (gm *GeoMap) SetLogger(l facility.Logger) {
	gm.logger = l
}

func (gm *GeoMap) SetOutputStream(o io.Writer) {
	gm.output = o
}

func (gm *GeoMap) SetMapId(id string) {
	gm.MapID = id
}

func (gm *GeoMap) SetSize(width, height string) {
	gm.Width = width
	gm.Height = height
}

func (gm *GeoMap) SetGeoMapJson(flag bool) {
	gm.toJsonOutput = flag
}

func (gm *GeoMap) SetPageTitle(title string) {
	gm.PageTitle = title
}

// SetInitialLocation pins the initial view; an explicit location wins over
// the auto-fit bound of the added points.
func (gm *GeoMap) SetInitialLocation(latlon *nums.LatLon, zoomLevel int) {
	gm.InitialLatLon = latlon
	gm.InitialZoomLevel = zoomLevel
}

func (gm *GeoMap) SetBaseLayer(layer BaseLayer) {
	gm.baseLayer = layer
}

func (gm *GeoMap) BaseLayer() BaseLayer {
	return gm.baseLayer
}

// SetLogoImage sets the branding overlay image, mime like "image/png".
// Without an image the overlay falls back to a text brand; the overlay
// itself is always part of the scene.
func (gm *GeoMap) SetLogoImage(mime string, data []byte) {
	if len(data) == 0 {
		return
	}
	gm.logoDataURI = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// AddMarker appends one categorical marker; markers render above every
// other layer, one per filtered row.
func (gm *GeoMap) AddMarker(m nums.GeoMarker) {
	gm.markers = append(gm.markers, m)
	for _, coord := range m.Coordinates() {
		gm.extendBound(coord[0], coord[1])
	}
}

// SetHeatPoints provides the heat layer input. An empty set records a
// skip instead of failing the composition.
func (gm *GeoMap) SetHeatPoints(pts []*nums.LatLon) {
	if len(pts) == 0 {
		gm.skip("heat layer skipped: no point data")
		return
	}
	gm.heatPoints = pts
	for _, p := range pts {
		gm.extendBound(p.Lat, p.Lon)
	}
}

// SetTimeline provides the timestamped layer input, a GeoJSON feature
// collection whose features carry time/popup/style properties. An empty
// collection records a skip instead of failing the composition.
func (gm *GeoMap) SetTimeline(fc *geojson.FeatureCollection) {
	if fc == nil || len(fc.Features) == 0 {
		gm.skip("timestamped layer skipped: no dated features")
		return
	}
	gm.timeline = fc
	for _, f := range fc.Features {
		bound := f.Geometry.Bound()
		gm.extendBound(bound.Min.Lat(), bound.Min.Lon())
		gm.extendBound(bound.Max.Lat(), bound.Max.Lon())
	}
}

func (gm *GeoMap) SetLegend(entries []LegendEntry) {
	gm.legend = entries
}

// Skips lists the optional layers that were requested but had no data.
func (gm *GeoMap) Skips() []string {
	return gm.skips
}

func (gm *GeoMap) skip(reason string) {
	gm.skips = append(gm.skips, reason)
	gm.logger.LogWarnf("GEOMAP %s", reason)
}

func (gm *GeoMap) extendBound(lat, lon float64) {
	gm.Bound = gm.Bound.Extend(&nums.LatLon{Lat: lat, Lon: lon})
}

func (gm *GeoMap) Open() error {
	return nil
}

func (gm *GeoMap) Flush(heading bool) {
}

// Close assembles the layers in their fixed order and writes the scene.
func (gm *GeoMap) Close() {
	if gm.output == nil {
		return
	}
	if gm.InitialZoomLevel == 0 {
		gm.InitialZoomLevel = 10
	}

	gm.JSAssets = append([]string{leafletJS}, gm.JSAssets...)
	gm.CSSAssets = append([]string{leafletCSS}, gm.CSSAssets...)

	gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`var map = L.map(%q, {attributionControl:false});`, gm.MapID))

	// 1. base tile layer
	if opt := gm.baseLayer.TileOption(); opt != "" {
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`L.tileLayer(%q, %s).addTo(map);`, gm.baseLayer.TileTemplate(), opt))
	} else {
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`L.tileLayer(%q).addTo(map);`, gm.baseLayer.TileTemplate()))
	}
	gm.layers = append(gm.layers, &Layer{Kind: "tile", Name: gm.baseLayer.String()})

	// 2. branding overlay, rendered by the HTML template, always present
	gm.layers = append(gm.layers, &Layer{Kind: "logo"})

	// 3. user location control, always present
	gm.JSAssets = append(gm.JSAssets, locateJS)
	gm.CSSAssets = append(gm.CSSAssets, locateCSS)
	gm.JSCodes = append(gm.JSCodes, `L.control.locate().addTo(map);`)
	gm.layers = append(gm.layers, &Layer{Kind: "locate"})

	// 4. heat layer
	if len(gm.heatPoints) > 0 {
		gm.JSAssets = append(gm.JSAssets, heatJS)
		pts := []string{}
		for _, p := range gm.heatPoints {
			pts = append(pts, p.String())
		}
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`L.heatLayer([%s]).addTo(map);`, strings.Join(pts, ",")))
		gm.layers = append(gm.layers, &Layer{Kind: "heat", Count: len(gm.heatPoints)})
	}

	// 5. timestamped animated layer
	if gm.timeline != nil {
		if jsonBytes, err := gm.timeline.MarshalJSON(); err != nil {
			gm.logger.LogErrorf("GEOMAP timeline marshal %s", err.Error())
		} else {
			gm.JSAssets = append(gm.JSAssets, iso8601JS, timeDimensionJS)
			gm.CSSAssets = append(gm.CSSAssets, timeDimensionCSS)
			gm.JSCodes = append(gm.JSCodes,
				`map.timeDimension = new L.TimeDimension({period:"P1D"});`,
				`map.timeDimensionControl = new L.Control.TimeDimension({autoPlay:false,loopButton:true,timeSliderDragUpdate:true,playerOptions:{loop:false}});`,
				`map.addControl(map.timeDimensionControl);`,
				fmt.Sprintf(`var timelineSrc = L.geoJson(%s, {pointToLayer: function(feature, latlng){`+
					`var st = feature.properties.style || {};`+
					`var mk = L.circleMarker(latlng, {radius:5, color:st.color, fillColor:st.color, fill:true, fillOpacity:0.7});`+
					`if (feature.properties.popup) { mk.bindPopup(feature.properties.popup); }`+
					`return mk;}});`, string(jsonBytes)),
				`L.timeDimension.layer.geoJson(timelineSrc, {updateTimeDimension:true, addlastPoint:true, duration:"P1D"}).addTo(map);`,
			)
			gm.layers = append(gm.layers, &Layer{Kind: "timeline", Count: len(gm.timeline.Features)})
		}
	}

	// 6. categorical markers and legend panel
	if len(gm.markers) > 0 {
		for i, mkr := range gm.markers {
			coord := mkr.Coordinates()
			if len(coord) == 0 {
				continue
			}
			opt := "{}"
			popup := ""
			if props := mkr.Properties(); props != nil {
				popup, _ = props.PopString("popup")
				if v, err := props.MarshalJS(); err == nil {
					opt = v
				} else {
					gm.logger.LogWarnf("GEOMAP marker option %s", err.Error())
				}
			}
			gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`var obj%d = L.%s([%v,%v], %s).addTo(map);`,
				i, mkr.Marker(), coord[0][0], coord[0][1], opt))
			if popup != "" {
				gm.JSCodes = append(gm.JSCodes, fmt.Sprintf(`obj%d.bindPopup(%q);`, i, popup))
			}
		}
		gm.layers = append(gm.layers, &Layer{Kind: "markers", Count: len(gm.markers)})
	}
	if len(gm.legend) > 0 {
		gm.layers = append(gm.layers, &Layer{Kind: "legend", Count: len(gm.legend)})
	}

	if gm.InitialLatLon != nil {
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf("map.setView(%s, %d);", gm.InitialLatLon.String(), gm.InitialZoomLevel))
	} else if !gm.Bound.IsEmpty() {
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf("map.fitBounds(%s);", gm.Bound.String()))
	} else {
		gm.JSCodes = append(gm.JSCodes, fmt.Sprintf("map.setView(%s, %d);", nums.NewLatLon(-15.7934, -47.8823).String(), gm.InitialZoomLevel))
	}

	if gm.toJsonOutput {
		gm.renderJSON()
	} else {
		gm.renderHTML()
	}
}

func (gm *GeoMap) LogoHTMLNoEscaped() template.HTML {
	return template.HTML(logoHTML(gm.logoDataURI))
}

func (gm *GeoMap) LegendHTMLNoEscaped() template.HTML {
	return template.HTML(legendHTML(gm.legend))
}

type sceneJSON struct {
	MapID     string        `json:"mapID"`
	Width     string        `json:"width"`
	Height    string        `json:"height"`
	BaseLayer string        `json:"baseLayer"`
	Layers    []*Layer      `json:"layers"`
	Legend    []LegendEntry `json:"legend,omitempty"`
	Skips     []string      `json:"skips,omitempty"`
	JSAssets  []string      `json:"jsAssets"`
	CSSAssets []string      `json:"cssAssets"`
	JSCodes   []string      `json:"jsCodes"`
}

func (gm *GeoMap) renderJSON() {
	scene := &sceneJSON{
		MapID:     gm.MapID,
		Width:     gm.Width,
		Height:    gm.Height,
		BaseLayer: gm.baseLayer.String(),
		Layers:    gm.layers,
		Legend:    gm.legend,
		Skips:     gm.skips,
		JSAssets:  gm.JSAssets,
		CSSAssets: gm.CSSAssets,
		JSCodes:   gm.JSCodes,
	}
	enc := json.NewEncoder(gm.output)
	if err := enc.Encode(scene); err != nil {
		gm.output.Write([]byte(err.Error()))
	}
}

func (gm *GeoMap) renderHTML() {
	contents := []string{HeaderTemplate, BaseTemplate, HtmlTemplate}
	tpl := template.New("geomap").Funcs(template.FuncMap{
		"safeJS": func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	})
	tpl = template.Must(tpl.Parse(contents[0]))
	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "geomap", gm); err != nil {
		buf.WriteString(err.Error())
	}

	if _, err := gm.output.Write(buf.Bytes()); err != nil {
		gm.logger.LogErrorf("GEOMAP render %s", err.Error())
	}
}
