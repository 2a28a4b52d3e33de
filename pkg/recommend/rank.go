package recommend

import (
	"sort"
	"time"
)

// Rank scores every crop in the catalog for one season, keeps those at or
// above AdmissionThreshold and orders them by score, highest first. Equal
// scores keep catalog order.
func Rank(c Conditions, cat *Catalog, season Season) []Recommendation {
	out := []Recommendation{}
	cat.each(func(p CropProfile) {
		m := Evaluate(p, c, season)
		score := m.Score()
		if score < AdmissionThreshold {
			return
		}
		out = append(out, Recommendation{
			Name:           p.Name,
			Score:          score,
			MatchedFactors: m.Factors(),
			Details:        detailsOf(p),
		})
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Clock returns the current time; tests replace it to pin the month.
type Clock func() time.Time

// Recommender resolves the season from its clock and ranks a catalog.
type Recommender struct {
	calendar Calendar
	now      Clock
}

func NewRecommender(cal Calendar, now Clock) *Recommender {
	if now == nil {
		now = time.Now
	}
	if cal == "" {
		cal = ThreeSeasons
	}
	return &Recommender{calendar: cal, now: now}
}

func (r *Recommender) Calendar() Calendar { return r.calendar }

func (r *Recommender) CurrentSeason() Season {
	return r.calendar.SeasonFor(r.now().Month())
}

// Recommend resolves the season once and ranks the catalog against it.
func (r *Recommender) Recommend(c Conditions, cat *Catalog) (Season, []Recommendation) {
	season := r.CurrentSeason()
	return season, Rank(c, cat, season)
}
