package recommend

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownSeason = errors.New("unknown season")

// Season is a growing period derived from the calendar month.
type Season string

const (
	Kharif Season = "kharif" // monsoon
	Rabi   Season = "rabi"   // winter
	Zaid   Season = "zaid"   // summer
)

var seasonAliases = map[string]Season{
	"kharif":         Kharif,
	"monsoon":        Kharif,
	"monsoon season": Kharif,
	"rabi":           Rabi,
	"winter":         Rabi,
	"winter season":  Rabi,
	"zaid":           Zaid,
	"summer":         Zaid,
	"summer season":  Zaid,
}

// ParseSeason accepts the canonical identifiers, their English names and the
// display names, case-insensitively.
func ParseSeason(s string) (Season, error) {
	if v, ok := seasonAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeason, s)
}

// ParseSeasonList splits a comma separated list. Unknown entries are returned
// as an error alongside the seasons that did parse.
func ParseSeasonList(s string) ([]Season, error) {
	var (
		out  []Season
		errs []error
	)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParseSeason(part)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

func (s Season) Title() string {
	switch s {
	case Kharif:
		return "Kharif"
	case Rabi:
		return "Rabi"
	case Zaid:
		return "Zaid"
	}
	return string(s)
}

// DisplayName is the label shown next to results, e.g. "Monsoon season".
func (s Season) DisplayName() string {
	switch s {
	case Kharif:
		return "Monsoon season"
	case Rabi:
		return "Winter season"
	case Zaid:
		return "Summer season"
	}
	return string(s)
}

// Calendar maps months onto seasons.
type Calendar string

const (
	ThreeSeasons Calendar = "three"
	TwoSeasons   Calendar = "two"
)

func ParseCalendar(s string) (Calendar, error) {
	switch Calendar(strings.ToLower(strings.TrimSpace(s))) {
	case ThreeSeasons, "":
		return ThreeSeasons, nil
	case TwoSeasons:
		return TwoSeasons, nil
	}
	return "", fmt.Errorf("unknown season calendar %q", s)
}

// SeasonFor resolves the month: June-October is Kharif, November-March is
// Rabi and April-May is Zaid, or Rabi under the two-season calendar.
func (c Calendar) SeasonFor(m time.Month) Season {
	switch {
	case m >= time.June && m <= time.October:
		return Kharif
	case m >= time.November || m <= time.March:
		return Rabi
	case c == TwoSeasons:
		return Rabi
	default:
		return Zaid
	}
}

// Seasons lists the seasons the calendar can produce.
func (c Calendar) Seasons() []Season {
	if c == TwoSeasons {
		return []Season{Kharif, Rabi}
	}
	return []Season{Kharif, Rabi, Zaid}
}
