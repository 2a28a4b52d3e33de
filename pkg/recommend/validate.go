package recommend

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultHumidity = 70.0
	DefaultPH       = 6.5
)

// DefaultSoils is used when the store has no soil types.
var DefaultSoils = []string{"clay", "loam", "sandy"}

// RawValue is an unparsed input field. It decodes from a JSON string or a
// JSON number so form posts and API bodies share one path.
type RawValue string

func (v *RawValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	*v = RawValue(b)
	return nil
}

// RawConditions is user input before validation.
type RawConditions struct {
	Temperature RawValue `json:"temperature" form:"temperature"`
	Rainfall    RawValue `json:"rainfall" form:"rainfall"`
	Humidity    RawValue `json:"humidity" form:"humidity"`
	PH          RawValue `json:"ph" form:"ph"`
	SoilType    string   `json:"soil_type" form:"soil_type"`
}

type numericField struct {
	label    string
	raw      RawValue
	min, max float64
	rangeMsg string
	optional bool
	def      float64
	dst      *float64
}

// ParseConditions validates every field independently and collects one
// message per failed field. Conditions are only meaningful when no
// messages are returned. soils is the set of known soil identifiers.
func ParseConditions(raw RawConditions, soils []string) (Conditions, []string) {
	var c Conditions
	fields := []numericField{
		{label: "Temperature", raw: raw.Temperature, min: 0, max: 50, rangeMsg: "Temperature must be between 0°C and 50°C", dst: &c.Temperature},
		{label: "Rainfall", raw: raw.Rainfall, min: 0, max: 5000, rangeMsg: "Rainfall must be between 0mm and 5000mm", dst: &c.Rainfall},
		{label: "Humidity", raw: raw.Humidity, min: 0, max: 100, rangeMsg: "Humidity must be between 0% and 100%", optional: true, def: DefaultHumidity, dst: &c.Humidity},
		{label: "pH", raw: raw.PH, min: 0, max: 14, rangeMsg: "pH must be between 0 and 14", optional: true, def: DefaultPH, dst: &c.PH},
	}

	errs := []string{}
	for _, f := range fields {
		if msg := f.parse(); msg != "" {
			errs = append(errs, msg)
		}
	}

	soil := strings.ToLower(strings.TrimSpace(raw.SoilType))
	if !knownSoil(soil, soils) {
		errs = append(errs, "Invalid soil type")
	} else {
		c.SoilType = soil
	}
	return c, errs
}

// ValidateConditions returns the validation messages for raw input; an empty
// slice means the input can be scored.
func ValidateConditions(raw RawConditions, soils []string) []string {
	_, errs := ParseConditions(raw, soils)
	return errs
}

func (f numericField) parse() string {
	s := strings.TrimSpace(string(f.raw))
	if s == "" {
		if f.optional {
			*f.dst = f.def
			return ""
		}
		return f.label + " is required"
	}
	if !isDecimal(s) {
		return f.label + " must be a number"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return f.label + " must be a number"
	}
	if v < f.min || v > f.max {
		return f.rangeMsg
	}
	*f.dst = v
	return ""
}

// isDecimal rejects the hex-float and underscore forms ParseFloat also accepts.
func isDecimal(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return false
	}
	return !strings.Contains(s, "_")
}

func knownSoil(soil string, soils []string) bool {
	if soil == "" {
		return false
	}
	if len(soils) == 0 {
		soils = DefaultSoils
	}
	for _, s := range soils {
		if s == soil {
			return true
		}
	}
	return false
}
