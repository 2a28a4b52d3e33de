package repositoryImp

import (
	"gorm.io/gorm"

	"croprec/entities"
	"croprec/pkg/season/repository"
)

type seasonRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeasonRepository { return &seasonRepo{db} }

func (r *seasonRepo) All() ([]entities.Season, error) {
	var out []entities.Season
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *seasonRepo) FindByName(name string) (*entities.Season, error) {
	var s entities.Season
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
