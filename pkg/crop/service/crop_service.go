package service

import (
	"croprec/entities"
	"croprec/pkg/recommend"
)

type CropService interface {
	ListCrops() ([]entities.Crop, error)
	GetCrop(name string) (*entities.Crop, error)
	// LoadCatalog builds the immutable catalog from storage, skipping rows
	// that cannot be turned into a valid profile.
	LoadCatalog() (*recommend.Catalog, error)
}
