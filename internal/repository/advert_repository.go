package repository

import (
	"InfoCity/internal/models"
	"InfoCity/internal/query"
)

type AdvertRepository interface {
	GenericRepository[models.Advert]
	FindByTown(townID uint, limit int) ([]models.Advert, error)
	FindByType(kind string) ([]models.Advert, error)
}

type AdvertRepositoryImpl[T models.Advert] struct {
	GenericRepository[models.Advert]
}

func NewAdvertRepository(session *Session) AdvertRepository {
	return &AdvertRepositoryImpl[models.Advert]{
		GenericRepository: NewGenericRepository[models.Advert](session),
	}
}

// FindByTown returns at most limit adverts of the town, all of them when limit is 0.
func (r *AdvertRepositoryImpl[T]) FindByTown(townID uint, limit int) ([]models.Advert, error) {
	params := query.With("town", query.Uint(uint64(townID))).Parameters()
	return r.FindWithNamedQueryParamsLimit("Advert.findByTown", params, limit)
}

func (r *AdvertRepositoryImpl[T]) FindByType(kind string) ([]models.Advert, error) {
	return r.FindWithNamedQueryParams("Advert.findByType", query.With("type", query.String(kind)).Parameters())
}
