package repository

import (
	"InfoCity/internal/query"
	"errors"
	"time"
)

var (
	ErrNoActiveTransaction = errors.New("no active transaction")
	ErrSessionClosed       = errors.New("session is closed")
	ErrEntityNotFound      = errors.New("entity not found")
	ErrUnknownNamedQuery   = errors.New("unknown named query")
)

// Entity is anything gorm can resolve by its primary key.
type Entity interface {
	GetID() uint
}

type GenericRepository[T Entity] interface {
	Create(entity *T) (*T, error)
	Find(id uint) (*T, error)
	Update(entity *T) (*T, error)
	Delete(id uint) error
	Exists(id uint) (bool, error)
	FindAll() ([]T, error)
	FindWithNamedQuery(name string) ([]T, error)
	FindWithNamedQueryLimit(name string, limit int) ([]T, error)
	FindWithNamedQueryParams(name string, params query.Parameters) ([]T, error)
	FindWithNamedQueryParamsLimit(name string, params query.Parameters, limit int) ([]T, error)
	FindByNativeQuery(sql string) ([]T, error)
	PurgeDeleted(before time.Time) (int64, error)
}

type namedQuerier interface {
	NamedQueries() map[string]query.Named
}
