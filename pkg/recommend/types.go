package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidRange  = errors.New("range min is greater than max")
	ErrEmptyName     = errors.New("crop name is empty")
	ErrDuplicateCrop = errors.New("duplicate crop name")
)

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func NewRange(min, max float64) (Range, error) {
	if min > max {
		return Range{}, fmt.Errorf("%w: %v > %v", ErrInvalidRange, min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float64) bool { return r.Min <= v && v <= r.Max }

func (r Range) String() string { return formatNum(r.Min) + "-" + formatNum(r.Max) }

func formatNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Conditions are the validated environmental readings a recommendation is made for.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	SoilType    string  `json:"soil_type"`
}

// CropProfile is one catalog entry. Build it with NewCropProfile so ranges,
// soils and seasons are checked and normalized.
type CropProfile struct {
	Name        string
	Temperature Range
	Rainfall    Range
	PH          Range
	Humidity    Range
	Soils       []string
	Seasons     []Season
	Nutrients   map[string]string
}

func NewCropProfile(p CropProfile) (CropProfile, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return CropProfile{}, ErrEmptyName
	}
	checks := []struct {
		label string
		r     Range
	}{
		{"temperature", p.Temperature},
		{"rainfall", p.Rainfall},
		{"ph", p.PH},
		{"humidity", p.Humidity},
	}
	for _, c := range checks {
		if _, err := NewRange(c.r.Min, c.r.Max); err != nil {
			return CropProfile{}, fmt.Errorf("%s %s: %w", name, c.label, err)
		}
	}

	out := CropProfile{
		Name:        name,
		Temperature: p.Temperature,
		Rainfall:    p.Rainfall,
		PH:          p.PH,
		Humidity:    p.Humidity,
		Soils:       normalizeSoils(p.Soils),
		Seasons:     dedupeSeasons(p.Seasons),
		Nutrients:   make(map[string]string, len(p.Nutrients)),
	}
	for k, v := range p.Nutrients {
		out.Nutrients[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out, nil
}

func normalizeSoils(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func dedupeSeasons(in []Season) []Season {
	seen := map[Season]struct{}{}
	out := make([]Season, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (p CropProfile) HasSoil(soil string) bool {
	for _, s := range p.Soils {
		if s == soil {
			return true
		}
	}
	return false
}

func (p CropProfile) HasSeason(season Season) bool {
	for _, s := range p.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Catalog is the immutable set of crop profiles recommendations are drawn from.
// It is safe for concurrent use once built.
type Catalog struct {
	profiles []CropProfile
	byName   map[string]int
}

// NewCatalog builds a catalog; every profile must already have passed NewCropProfile.
func NewCatalog(profiles ...CropProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make([]CropProfile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		key := strings.ToLower(p.Name)
		if _, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCrop, p.Name)
		}
		c.byName[key] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.profiles)
}

// Lookup finds a profile by name, ignoring case.
func (c *Catalog) Lookup(name string) (CropProfile, bool) {
	if c == nil {
		return CropProfile{}, false
	}
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CropProfile{}, false
	}
	return c.profiles[i], true
}

// Names returns the crop names in ascending order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p.Name)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) each(fn func(CropProfile)) {
	if c == nil {
		return
	}
	for _, p := range c.profiles {
		fn(p)
	}
}

// Details is the display projection of a recommended crop.
type Details struct {
	OptimalTemp      string            `json:"optimal_temp"`
	OptimalRainfall  string            `json:"optimal_rainfall"`
	OptimalPH        string            `json:"optimal_ph"`
	OptimalHumidity  string            `json:"optimal_humidity"`
	SuitableSoil     []string          `json:"suitable_soil"`
	GrowingSeason    []string          `json:"growing_season"`
	NutrientsNeeded  map[string]string `json:"nutrients_needed"`
	Description      string            `json:"description"`
	FarmingPractices string            `json:"farming_practices"`
	WaterNeeds       string            `json:"water_needs"`
	SunlightNeeds    string            `json:"sunlight_needs"`
}

type Recommendation struct {
	Name           string   `json:"name"`
	Score          int      `json:"score"`
	MatchedFactors []string `json:"matched_factors"`
	Details        Details  `json:"details"`
}

func detailsOf(p CropProfile) Details {
	seasons := make([]string, 0, len(p.Seasons))
	for _, s := range p.Seasons {
		seasons = append(seasons, s.Title())
	}
	nutrients := make(map[string]string, len(p.Nutrients))
	for k, v := range p.Nutrients {
		nutrients[k] = v
	}
	return Details{
		OptimalTemp:      p.Temperature.String() + "°C",
		OptimalRainfall:  p.Rainfall.String() + "mm",
		OptimalPH:        p.PH.String(),
		OptimalHumidity:  p.Humidity.String() + "%",
		SuitableSoil:     append([]string(nil), p.Soils...),
		GrowingSeason:    seasons,
		NutrientsNeeded:  nutrients,
		Description:      "Detailed information about " + p.Name,
		FarmingPractices: "Standard farming practices for " + p.Name,
		WaterNeeds:       waterNeeds(p.Rainfall),
		SunlightNeeds:    "Full Sun",
	}
}

func waterNeeds(rain Range) string {
	switch {
	case rain.Min > 1000:
		return "High"
	case rain.Min > 500:
		return "Medium"
	default:
		return "Low"
	}
}
