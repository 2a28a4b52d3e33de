package repository

import "croprec/entities"

type SeasonRepository interface {
	All() ([]entities.Season, error)
	FindByName(name string) (*entities.Season, error)
}
