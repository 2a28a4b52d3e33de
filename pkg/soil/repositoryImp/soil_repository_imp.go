package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"croprec/entities"
	"croprec/pkg/soil/repository"
)

type soilRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilRepository { return &soilRepo{db} }

func (r *soilRepo) All() ([]entities.SoilType, error) {
	var out []entities.SoilType
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *soilRepo) Names() ([]string, error) {
	var names []string
	if err := r.db.Model(&entities.SoilType{}).Order("id ASC").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	for i, n := range names {
		names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return names, nil
}
