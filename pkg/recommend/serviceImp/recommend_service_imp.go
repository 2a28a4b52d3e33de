package serviceImp

import (
	"log"

	"croprec/pkg/recommend"
	"croprec/pkg/recommend/service"
	soilrepo "croprec/pkg/soil/repository"
)

type recommendSvc struct {
	catalog *recommend.Catalog
	rec     *recommend.Recommender
	soils   soilrepo.SoilRepository
}

// New wires the service to a catalog built once at start-up. soils may be
// nil, in which case recommend.DefaultSoils is accepted.
func New(cat *recommend.Catalog, rec *recommend.Recommender, soils soilrepo.SoilRepository) service.RecommendService {
	return &recommendSvc{catalog: cat, rec: rec, soils: soils}
}

func (s *recommendSvc) SoilTypes() []string {
	if s.soils == nil {
		return recommend.DefaultSoils
	}
	names, err := s.soils.Names()
	if err != nil {
		log.Printf("[recommend] soil types unavailable, using defaults: %v", err)
		return recommend.DefaultSoils
	}
	if len(names) == 0 {
		return recommend.DefaultSoils
	}
	return names
}

func (s *recommendSvc) CurrentSeason() recommend.Season { return s.rec.CurrentSeason() }

func (s *recommendSvc) Recommend(raw recommend.RawConditions) (*service.Result, []string) {
	cond, errs := recommend.ParseConditions(raw, s.SoilTypes())
	if len(errs) > 0 {
		return nil, errs
	}
	season, recs := s.rec.Recommend(cond, s.catalog)
	log.Printf("[recommend] season=%s scored=%d returned=%d", season, s.catalog.Len(), len(recs))
	return &service.Result{Season: season, Conditions: cond, Recommendations: recs}, nil
}
