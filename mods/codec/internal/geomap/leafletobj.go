package geomap

import (
	"fmt"
	"html"
	"strings"
)

// Layer is one composed scene layer in render order.
type Layer struct {
	Kind  string `json:"kind"`
	Name  string `json:"name,omitempty"`
	Count int    `json:"count,omitempty"`
}

type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func legendHTML(entries []LegendEntry) string {
	if len(entries) == 0 {
		return ""
	}
	sb := &strings.Builder{}
	sb.WriteString(`<div class="geomap_legend"><h4>Legenda</h4>`)
	for _, e := range entries {
		fmt.Fprintf(sb, `<i style="background:%s;"></i>%s<br>`,
			html.EscapeString(e.Color), html.EscapeString(e.Label))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func logoHTML(dataURI string) string {
	if dataURI == "" {
		return `<div class="geomap_logo"><span>testeFITEC</span></div>`
	}
	return fmt.Sprintf(`<div class="geomap_logo"><img src="%s" alt="logo"></div>`, dataURI)
}
