package serviceImp

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"croprec/entities"
	repo "croprec/pkg/crop/repository"
	"croprec/pkg/crop/service"
	"croprec/pkg/recommend"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) ListCrops() ([]entities.Crop, error) { return s.r.All() }

func (s *cropSvc) GetCrop(name string) (*entities.Crop, error) {
	return s.r.FindByName(strings.TrimSpace(name))
}

func (s *cropSvc) LoadCatalog() (*recommend.Catalog, error) {
	rows, err := s.r.All()
	if err != nil {
		return nil, fmt.Errorf("load crops: %w", err)
	}

	seen := map[string]struct{}{}
	profiles := make([]recommend.CropProfile, 0, len(rows))
	for _, row := range rows {
		p, err := ToProfile(row)
		if err != nil {
			log.Printf("[catalog] skipping crop %q: %v", row.Name, err)
			continue
		}
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			log.Printf("[catalog] skipping crop %q: %v", row.Name, recommend.ErrDuplicateCrop)
			continue
		}
		seen[key] = struct{}{}
		profiles = append(profiles, p)
	}

	cat, err := recommend.NewCatalog(profiles...)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		log.Printf("[catalog] WARN: catalog is empty, no crop will be recommended")
	}
	log.Printf("[catalog] loaded %d of %d crops", cat.Len(), len(rows))
	return cat, nil
}

// ToProfile converts a stored crop row into a validated profile.
func ToProfile(row entities.Crop) (recommend.CropProfile, error) {
	seasons, err := recommend.ParseSeasonList(row.Seasons)
	if err != nil {
		return recommend.CropProfile{}, err
	}
	nutrients := map[string]string{}
	if strings.TrimSpace(row.Nutrients) != "" {
		if err := json.Unmarshal([]byte(row.Nutrients), &nutrients); err != nil {
			return recommend.CropProfile{}, fmt.Errorf("nutrients: %w", err)
		}
	}
	return recommend.NewCropProfile(recommend.CropProfile{
		Name:        row.Name,
		Temperature: recommend.Range{Min: row.TempMin, Max: row.TempMax},
		Rainfall:    recommend.Range{Min: row.RainMin, Max: row.RainMax},
		PH:          recommend.Range{Min: row.PHMin, Max: row.PHMax},
		Humidity:    recommend.Range{Min: row.HumidityMin, Max: row.HumidityMax},
		Soils:       strings.Split(row.SoilTypes, ","),
		Seasons:     seasons,
		Nutrients:   nutrients,
	})
}
