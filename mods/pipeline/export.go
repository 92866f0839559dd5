package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Tiagofholanda/testeFITEC/mods/codec"
	"github.com/paulmach/orb/geojson"
)

// timestampFormat keeps exported file names collision free across runs.
const timestampFormat = "20060102_150405"

// ExportHTML renders the composed scene into dir as a standalone document and
// returns the written path. An empty dir writes into the working directory.
func (r *Result) ExportHTML(dir string) (string, error) {
	if r.Scene == nil {
		return "", &EmptyResultError{What: "map export"}
	}
	path := joinDir(dir, fmt.Sprintf("mapa_interativo_%s.html", time.Now().Format(timestampFormat)))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := codec.SceneEncoder(r.Scene)
	enc.SetOutputStream(f)
	if err := enc.Open(); err != nil {
		return "", err
	}
	enc.Flush(false)
	enc.Close()
	return path, nil
}

// ExportGeoJSON writes the point feature collection into dir and returns the
// written path.
func ExportGeoJSON(fc *geojson.FeatureCollection, dir string) (string, error) {
	if fc == nil || len(fc.Features) == 0 {
		return "", &EmptyResultError{What: "geojson export"}
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return "", err
	}
	path := joinDir(dir, fmt.Sprintf("dados_%s.geojson", time.Now().Format(timestampFormat)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func joinDir(dir, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
