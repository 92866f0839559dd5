package geomap

// plugin assets resolved from public CDNs so the exported document is
// self-contained aside from network access
const (
	leafletJS        = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	leafletCSS       = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	locateJS         = "https://cdn.jsdelivr.net/npm/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.js"
	locateCSS        = "https://cdn.jsdelivr.net/npm/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.css"
	heatJS           = "https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"
	iso8601JS        = "https://cdn.jsdelivr.net/npm/iso8601-js-period@0.2.1/iso8601.min.js"
	timeDimensionJS  = "https://cdn.jsdelivr.net/npm/leaflet-timedimension@1.1.1/dist/leaflet.timedimension.min.js"
	timeDimensionCSS = "https://cdn.jsdelivr.net/npm/leaflet-timedimension@1.1.1/dist/leaflet.timedimension.control.min.css"
)

var HeaderTemplate = `
{{ define "header" }}
<head>
    <meta charset="utf-8">
    <title>{{ .PageTitle }}</title>
{{- range .JSAssets }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CSSAssets }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
</head>
{{ end }}
`

var BaseTemplate = `
{{- define "base" }}
<div class="geomap_container">
    <div class="geomap_item" id="{{ .MapID }}" style="width:{{ .Width }};height:{{ .Height }};"></div>
</div>
{{ .LogoHTMLNoEscaped }}
{{ .LegendHTMLNoEscaped }}

<script type="text/javascript">
    "use strict";
    {{- range .JSCodes }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var HtmlTemplate = `{{- define "geomap" }}<!DOCTYPE html>
<html>
    {{- template "header" . }}
<body>
    {{- template "base" . }}
<style>
    .geomap_container {margin-top:30px; display: flex;justify-content: center;align-items: center;}
    .geomap_item {margin: auto;}
    .geomap_logo {position: fixed; bottom: 10px; right: 10px; z-index: 9999; width: 100px; height: 100px;}
    .geomap_logo img {width: 100%; height: 100%;}
    .geomap_logo span {font-weight: bold; opacity: 0.7;}
    .geomap_legend {position: fixed; bottom: 50px; right: 50px; z-index: 9999;
        background-color: white; padding: 10px; border: 2px solid grey; border-radius: 5px;}
    .geomap_legend i {width: 20px; height: 20px; float: left; margin-right: 10px;}
</style>
</body>
</html>
{{ end }}
`
