package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Tiagofholanda/testeFITEC/mods/codec"
	"github.com/Tiagofholanda/testeFITEC/mods/dataset"
	"github.com/Tiagofholanda/testeFITEC/mods/logging"
	"github.com/Tiagofholanda/testeFITEC/mods/pipeline"
	"github.com/jedib0t/go-pretty/v6/table"
)

var usageStr = `
Usage: surveymap [options]

Options:
	--help, -h              Show this help message
	--input <path>          Input table, .csv or .xlsx (required)
	--request <path>        YAML request file; flags override its fields
	--x <column>            Easting column (default: POINT_X)
	--y <column>            Northing column (default: POINT_Y)
	--date <column>         Date column for the animated layer
	--epsg <code>           Source coordinate system (default: 31982)
	--delimiter <char>      CSV field delimiter (default: ,)
	--filter col=v1|v2      Keep rows whose column matches a value, repeatable
	--legend <column>       Category column for markers and legend
	--color cat=#rrggbb     Category color, repeatable
	--basemap <name>        OpenStreetMap, GoogleMaps, GoogleSatellite,
	                        GoogleTerrain, EsriSatellite, EsriStreet
	--heatmap               Add the heat layer
	--timeseries            Add the animated timestamped layer
	--scope <name>          Rows feeding heat/time layers: filtered, all
	--stats <column>        Print category statistics for a column
	--title <text>          Page title (default: Mapa Interativo)
	--logo <path>           Branding overlay image
	--out <dir>             Output directory (default: current)
	--geojson               Also export the point features as GeoJSON
	--json                  Print the scene description as JSON to stdout
	--log-filename <path>   Log file path (default: -)
	--log-level <level>     Log level (default: INFO), DEBUG, INFO, WARN, ERROR
	--log-max-size <size>   Maximum size of the log file in MB (default: 100)
	--log-max-age <days>    Maximum days to retain old log files (default: 7)
	--log-max-backups <n>   Maximum number of old log files to retain (default: 10)
	--log-compress          Compress the old log files (default: false)
`

func usage() {
	fmt.Printf("%s\n", strings.ReplaceAll(usageStr, "\t", "    "))
	os.Exit(0)
}

// pairListFlag collects repeatable "key=value" options.
type pairListFlag struct {
	pairs [][2]string
}

func (p *pairListFlag) String() string {
	elems := []string{}
	for _, kv := range p.pairs {
		elems = append(elems, kv[0]+"="+kv[1])
	}
	return strings.Join(elems, ",")
}

func (p *pairListFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expect key=value, got %q", value)
	}
	p.pairs = append(p.pairs, [2]string{key, val})
	return nil
}

func main() {
	optInput := flag.String("input", "", "input table, .csv or .xlsx")
	optRequest := flag.String("request", "", "YAML request file")
	optX := flag.String("x", "", "easting column")
	optY := flag.String("y", "", "northing column")
	optDate := flag.String("date", "", "date column")
	optEPSG := flag.Int("epsg", 0, "source coordinate system")
	optDelimiter := flag.String("delimiter", "", "CSV field delimiter")
	optLegend := flag.String("legend", "", "category column for markers and legend")
	optBasemap := flag.String("basemap", "", "base tile layer")
	optHeatmap := flag.Bool("heatmap", false, "add the heat layer")
	optTimeSeries := flag.Bool("timeseries", false, "add the animated timestamped layer")
	optScope := flag.String("scope", "", "rows feeding heat/time layers")
	optStats := flag.String("stats", "", "category statistics column")
	optTitle := flag.String("title", "", "page title")
	optLogo := flag.String("logo", "", "branding overlay image")
	optOut := flag.String("out", "", "output directory")
	optGeoJSON := flag.Bool("geojson", false, "export point features as GeoJSON")
	optJSON := flag.Bool("json", false, "print the scene description as JSON")
	optLogFilename := flag.String("log-filename", "-", "log file path")
	optLogLevel := flag.String("log-level", "INFO", "log level")
	optLogMaxSize := flag.Int("log-max-size", 100, "maximum size of the log file in MB")
	optLogMaxAge := flag.Int("log-max-age", 7, "maximum number of days to retain old log files")
	optLogMaxBackups := flag.Int("log-max-backups", 10, "maximum number of old log files to retain")
	optLogCompress := flag.Bool("log-compress", false, "compress the log backup files")

	filters := &pairListFlag{}
	colors := &pairListFlag{}
	flag.Var(filters, "filter", "col=v1|v2 filter constraint")
	flag.Var(colors, "color", "cat=#rrggbb category color")

	flag.Usage = usage
	flag.Parse()

	logging.Configure(&logging.Config{
		Console:             false,
		Filename:            *optLogFilename,
		Append:              true,
		MaxSize:             *optLogMaxSize,
		MaxBackups:          *optLogMaxBackups,
		MaxAge:              *optLogMaxAge,
		Compress:            *optLogCompress,
		DefaultLevel:        *optLogLevel,
		DefaultPrefixWidth:  16,
		DefaultEnableSrcLoc: false,
	})
	log := logging.GetLog("surveymap")

	req := pipeline.DefaultRequest()
	if *optRequest != "" {
		var err error
		req, err = pipeline.LoadRequest(*optRequest)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
	}
	if *optInput != "" {
		req.Input = *optInput
	}
	if *optX != "" {
		req.XColumn = *optX
	}
	if *optY != "" {
		req.YColumn = *optY
	}
	if *optDate != "" {
		req.DateColumn = *optDate
	}
	if *optEPSG != 0 {
		req.SourceEPSG = *optEPSG
	}
	if *optDelimiter != "" {
		req.Delimiter = *optDelimiter
	}
	if *optBasemap != "" {
		req.BaseLayer = *optBasemap
	}
	if *optHeatmap {
		req.Heatmap = true
	}
	if *optTimeSeries {
		req.TimeSeries = true
	}
	if *optScope != "" {
		req.LayerScope = *optScope
	}
	if *optStats != "" {
		req.StatsColumn = *optStats
	}
	if *optTitle != "" {
		req.PageTitle = *optTitle
	}
	if *optLogo != "" {
		req.LogoPath = *optLogo
	}
	if len(filters.pairs) > 0 {
		if req.Filters == nil {
			req.Filters = dataset.FilterSpec{}
		}
		for _, kv := range filters.pairs {
			req.Filters[kv[0]] = append(req.Filters[kv[0]], strings.Split(kv[1], "|")...)
		}
	}
	if *optLegend != "" || len(colors.pairs) > 0 {
		if req.Legend == nil {
			req.Legend = &pipeline.Legend{}
		}
		if *optLegend != "" {
			req.Legend.Column = *optLegend
		}
		if req.Legend.Colors == nil {
			req.Legend.Colors = map[string]string{}
		}
		for _, kv := range colors.pairs {
			req.Legend.Colors[kv[0]] = kv[1]
		}
	}

	result, err := pipeline.Run(req, log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARN %s\n", w)
	}

	if *optJSON {
		result.Scene.SetGeoMapJson(true)
		enc := codec.SceneEncoder(result.Scene)
		enc.SetOutputStream(os.Stdout)
		if err := enc.Open(); err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
		enc.Close()
	} else {
		path, err := result.ExportHTML(*optOut)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
		fmt.Println(path)
	}

	if *optGeoJSON {
		path, err := pipeline.ExportGeoJSON(result.Points, *optOut)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
		fmt.Println(path)
	}

	if len(result.Stats) > 0 {
		printStats(req.StatsColumn, result.Stats)
	}
}

func printStats(column string, stats []dataset.CategoryStat) {
	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{column, "COUNT", "PERCENT", "COLOR"})
	for _, st := range stats {
		w.AppendRow(table.Row{st.Category, st.Count, fmt.Sprintf("%.1f%%", st.Percent), st.Color})
	}
	w.Render()
}
