package repository

import (
	"InfoCity/internal/models"
	"InfoCity/internal/query"
)

type UserRepository interface {
	GenericRepository[models.User]
	FindByEmail(email string) (*models.User, error)
	FindByTown(townID uint) ([]models.User, error)
}

type UserRepositoryImpl[T models.User] struct {
	GenericRepository[models.User]
}

func NewUserRepository(session *Session) UserRepository {
	return &UserRepositoryImpl[models.User]{
		GenericRepository: NewGenericRepository[models.User](session),
	}
}

func (r *UserRepositoryImpl[T]) FindByEmail(email string) (*models.User, error) {
	users, err := r.FindWithNamedQueryParamsLimit("User.findByEmail", query.With("email", query.String(email)).Parameters(), 1)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepositoryImpl[T]) FindByTown(townID uint) ([]models.User, error) {
	return r.FindWithNamedQueryParams("User.findByTown", query.With("town", query.Uint(uint64(townID))).Parameters())
}
