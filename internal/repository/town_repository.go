package repository

import (
	"InfoCity/internal/models"
	"InfoCity/internal/query"
)

type TownRepository interface {
	GenericRepository[models.Town]
	FindByName(name string) (*models.Town, error)
	FindByCountry(country string) ([]models.Town, error)
}

type TownRepositoryImpl[T models.Town] struct {
	GenericRepository[models.Town]
}

func NewTownRepository(session *Session) TownRepository {
	return &TownRepositoryImpl[models.Town]{
		GenericRepository: NewGenericRepository[models.Town](session),
	}
}

func (r *TownRepositoryImpl[T]) FindByName(name string) (*models.Town, error) {
	towns, err := r.FindWithNamedQueryParamsLimit("Town.findByName", query.With("name", query.String(name)).Parameters(), 1)
	if err != nil {
		return nil, err
	}
	if len(towns) == 0 {
		return nil, nil
	}
	return &towns[0], nil
}

func (r *TownRepositoryImpl[T]) FindByCountry(country string) ([]models.Town, error) {
	return r.FindWithNamedQueryParams("Town.findByCountry", query.With("country", query.String(country)).Parameters())
}
