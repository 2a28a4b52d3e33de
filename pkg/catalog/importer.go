// Package catalog imports crop tolerance tables from CSV or XLSX files into
// the crop store.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"croprec/entities"
	"croprec/pkg/crop/repository"
)

// Importer upserts crop rows read from a file.
type Importer struct{ repo repository.CropRepository }

func NewImporter(r repository.CropRepository) *Importer { return &Importer{repo: r} }

// ImportFile reads path (.csv or .xlsx) and upserts every valid row. It
// returns the number of rows written.
func (im *Importer) ImportFile(path string) (int, error) {
	var (
		crops []entities.Crop
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		crops, err = ReadCSVFile(path)
	case ".xlsx":
		crops, err = ReadXLSX(path, "")
	default:
		return 0, fmt.Errorf("unsupported catalog file %q", path)
	}
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range crops {
		if err := im.repo.Upsert(&crops[i]); err != nil {
			return n, fmt.Errorf("upsert %s: %w", crops[i].Name, err)
		}
		n++
	}
	log.Printf("[catalog] imported %d crops from %s", n, path)
	return n, nil
}

func ReadCSVFile(path string) ([]entities.Crop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func ReadCSV(r io.Reader) ([]entities.Crop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(head)
	if err != nil {
		return nil, err
	}

	var out []entities.Crop
	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line++
		if c, ok := cols.crop(rec, line); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// ReadXLSX reads the named sheet, or the first sheet when sheet is empty.
func ReadXLSX(path, sheet string) ([]entities.Crop, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	if sheet == "" {
		sheet = x.GetSheetName(0)
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []entities.Crop
	for i, rec := range rows[1:] {
		if c, ok := cols.crop(rec, i+2); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type columns struct {
	name, tempMin, tempMax, rainMin, rainMax int
	phMin, phMax, humMin, humMax             int
	seasons, soils, nutrients                int
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func mapColumns(head []string) (columns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	c := columns{
		name:      findAny("name", "crop", "crop_name"),
		tempMin:   findAny("temp_min", "temperature_min", "min_temp"),
		tempMax:   findAny("temp_max", "temperature_max", "max_temp"),
		rainMin:   findAny("rain_min", "rainfall_min", "min_rainfall"),
		rainMax:   findAny("rain_max", "rainfall_max", "max_rainfall"),
		phMin:     findAny("ph_min", "min_ph"),
		phMax:     findAny("ph_max", "max_ph"),
		humMin:    findAny("humidity_min", "min_humidity"),
		humMax:    findAny("humidity_max", "max_humidity"),
		seasons:   findAny("seasons", "season", "growing_season"),
		soils:     findAny("soil_types", "soils", "soil"),
		nutrients: findAny("nutrients", "nutrient_needs"),
	}
	required := map[string]int{
		"name": c.name, "temp_min": c.tempMin, "temp_max": c.tempMax,
		"rain_min": c.rainMin, "rain_max": c.rainMax, "ph_min": c.phMin, "ph_max": c.phMax,
		"seasons": c.seasons, "soil_types": c.soils,
	}
	var missing []string
	for _, k := range []string{"name", "temp_min", "temp_max", "rain_min", "rain_max", "ph_min", "ph_max", "seasons", "soil_types"} {
		if required[k] == -1 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("catalog missing required columns %v; found headers %v", missing, head)
	}
	return c, nil
}

// crop converts one record. Rows with a blank name or an unparsable number
// are skipped with a warning.
func (c columns) crop(rec []string, line int) (entities.Crop, bool) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	name := get(c.name)
	if name == "" {
		return entities.Crop{}, false
	}

	var bad []string
	num := func(label string, idx int) float64 {
		v, err := strconv.ParseFloat(get(idx), 64)
		if err != nil {
			bad = append(bad, label)
		}
		return v
	}
	// humidity columns are optional; a blank cell means no constraint
	opt := func(label string, idx int, def float64) float64 {
		if get(idx) == "" {
			return def
		}
		return num(label, idx)
	}
	out := entities.Crop{
		Name:        name,
		TempMin:     num("temp_min", c.tempMin),
		TempMax:     num("temp_max", c.tempMax),
		RainMin:     num("rain_min", c.rainMin),
		RainMax:     num("rain_max", c.rainMax),
		PHMin:       num("ph_min", c.phMin),
		PHMax:       num("ph_max", c.phMax),
		HumidityMin: opt("humidity_min", c.humMin, 0),
		HumidityMax: opt("humidity_max", c.humMax, 100),
		Seasons:     listCell(get(c.seasons)),
		SoilTypes:   listCell(get(c.soils)),
		Nutrients:   get(c.nutrients),
	}
	if out.Nutrients == "" {
		out.Nutrients = "{}"
	}
	if len(bad) > 0 {
		log.Printf("[catalog] line %d (%s): skipping, bad number in %v", line, name, bad)
		return entities.Crop{}, false
	}
	return out, true
}

// listCell accepts "a;b" or "a|b" in spreadsheet cells and stores "a,b".
func listCell(s string) string {
	return strings.NewReplacer(";", ",", "|", ",").Replace(s)
}
