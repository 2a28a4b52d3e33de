package recommend

// Factor weights. They add up to MaxScore.
const (
	TemperatureWeight = 30
	RainfallWeight    = 25
	SoilWeight        = 20
	PHWeight          = 15
	SeasonWeight      = 10

	MaxScore = TemperatureWeight + RainfallWeight + SoilWeight + PHWeight + SeasonWeight

	// AdmissionThreshold is the lowest score a crop needs to be recommended.
	AdmissionThreshold = 60
)

// Match records which factors a crop satisfied.
type Match struct {
	Temperature bool
	Rainfall    bool
	Soil        bool
	PH          bool
	Season      bool
}

func Evaluate(p CropProfile, c Conditions, season Season) Match {
	return Match{
		Temperature: p.Temperature.Contains(c.Temperature),
		Rainfall:    p.Rainfall.Contains(c.Rainfall),
		Soil:        p.HasSoil(c.SoilType),
		PH:          p.PH.Contains(c.PH),
		Season:      p.HasSeason(season),
	}
}

func (m Match) Score() int {
	score := 0
	if m.Temperature {
		score += TemperatureWeight
	}
	if m.Rainfall {
		score += RainfallWeight
	}
	if m.Soil {
		score += SoilWeight
	}
	if m.PH {
		score += PHWeight
	}
	if m.Season {
		score += SeasonWeight
	}
	return score
}

// Factors names the satisfied factors in weight order.
func (m Match) Factors() []string {
	out := make([]string, 0, 5)
	if m.Temperature {
		out = append(out, "temperature")
	}
	if m.Rainfall {
		out = append(out, "rainfall")
	}
	if m.Soil {
		out = append(out, "soil")
	}
	if m.PH {
		out = append(out, "ph")
	}
	if m.Season {
		out = append(out, "season")
	}
	return out
}

// Score is the compatibility score of a crop under the given conditions.
func Score(p CropProfile, c Conditions, season Season) int {
	return Evaluate(p, c, season).Score()
}
