package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"croprec/entities"
	"croprec/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

// All returns every crop in catalog order.
func (r *cropRepo) All() ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindByName(name string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert inserts c or overwrites the tolerance columns of the crop with the same name.
func (r *cropRepo) Upsert(c *entities.Crop) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"temp_min", "temp_max", "rain_min", "rain_max",
			"ph_min", "ph_max", "humidity_min", "humidity_max",
			"seasons", "soil_types", "nutrients", "updated_at",
		}),
	}).Create(c).Error
}
