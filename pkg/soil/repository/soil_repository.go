package repository

import "croprec/entities"

type SoilRepository interface {
	All() ([]entities.SoilType, error)
	// Names returns the lower-cased soil identifiers accepted as input.
	Names() ([]string, error)
}
