package service

import "croprec/pkg/recommend"

// Result is one recommendation pass.
type Result struct {
	Season          recommend.Season           `json:"season"`
	Conditions      recommend.Conditions       `json:"conditions"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

type RecommendService interface {
	// Recommend validates raw input and ranks the catalog. Validation
	// failures come back as messages and a nil result.
	Recommend(raw recommend.RawConditions) (*Result, []string)
	SoilTypes() []string
	CurrentSeason() recommend.Season
}
