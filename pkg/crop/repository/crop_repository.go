package repository

import "croprec/entities"

type CropRepository interface {
	All() ([]entities.Crop, error)
	FindByName(name string) (*entities.Crop, error)
	Upsert(c *entities.Crop) error
}
