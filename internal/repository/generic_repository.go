package repository

import (
	"InfoCity/internal/query"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenericRepositoryImpl[T Entity] struct {
	session *Session
}

func NewGenericRepository[T Entity](session *Session) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{session: session}
}

// Create inserts the entity inside the active transaction. The row is
// visible to later reads of the same session right away. Associations are
// not cascaded.
func (r *GenericRepositoryImpl[T]) Create(entity *T) (*T, error) {
	db, err := r.session.writeHandle()
	if err != nil {
		return nil, err
	}
	if err := db.Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Find returns nil without an error when no row has the given id.
func (r *GenericRepositoryImpl[T]) Find(id uint) (*T, error) {
	db, err := r.session.handle()
	if err != nil {
		return nil, err
	}
	var entity T
	err = db.Preload(clause.Associations).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update merges the state of a possibly detached entity: the row is
// updated, or inserted when it does not exist. The returned entity is
// read back from the store and is never the pointer passed in.
func (r *GenericRepositoryImpl[T]) Update(entity *T) (*T, error) {
	db, err := r.session.writeHandle()
	if err != nil {
		return nil, err
	}
	merged := *entity
	if err := db.Omit(clause.Associations).Save(&merged).Error; err != nil {
		return nil, err
	}
	managed, err := r.Find(merged.GetID())
	if err != nil {
		return nil, err
	}
	if managed == nil {
		return &merged, nil
	}
	return managed, nil
}

// Delete soft-deletes the row. A missing row does not fail here: the
// failure is recorded on the session and returned by Commit.
func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	db, err := r.session.writeHandle()
	if err != nil {
		return err
	}
	var entity T
	result := db.Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.session.deferFailure(fmt.Errorf("%w: %s with id %d", ErrEntityNotFound, r.table(db), id))
	}
	return nil
}

func (r *GenericRepositoryImpl[T]) Exists(id uint) (bool, error) {
	entity, err := r.Find(id)
	if err != nil {
		return false, err
	}
	return entity != nil, nil
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	db, err := r.session.handle()
	if err != nil {
		return nil, err
	}
	var entities []T
	err = db.Model(new(T)).Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) FindWithNamedQuery(name string) ([]T, error) {
	return r.FindWithNamedQueryParamsLimit(name, nil, 0)
}

func (r *GenericRepositoryImpl[T]) FindWithNamedQueryLimit(name string, limit int) ([]T, error) {
	return r.FindWithNamedQueryParamsLimit(name, nil, limit)
}

func (r *GenericRepositoryImpl[T]) FindWithNamedQueryParams(name string, params query.Parameters) ([]T, error) {
	return r.FindWithNamedQueryParamsLimit(name, params, 0)
}

// FindWithNamedQueryParamsLimit runs a query registered by T under name.
// A limit of zero or less returns every matching row.
func (r *GenericRepositoryImpl[T]) FindWithNamedQueryParamsLimit(name string, params query.Parameters, limit int) ([]T, error) {
	db, err := r.session.handle()
	if err != nil {
		return nil, err
	}
	named, err := r.namedQuery(name)
	if err != nil {
		return nil, err
	}

	tx := db.Model(new(T))
	if named.Where != "" {
		if len(params) > 0 {
			tx = tx.Where(named.Where, params.Args())
		} else {
			tx = tx.Where(named.Where)
		}
	}
	if named.Order != "" {
		tx = tx.Order(named.Order)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var entities []T
	err = tx.Find(&entities).Error
	return entities, err
}

// FindByNativeQuery runs sql as is. The caller is responsible for escaping.
func (r *GenericRepositoryImpl[T]) FindByNativeQuery(sql string) ([]T, error) {
	db, err := r.session.handle()
	if err != nil {
		return nil, err
	}
	var entities []T
	err = db.Raw(sql).Scan(&entities).Error
	return entities, err
}

// PurgeDeleted hard-deletes rows soft-deleted before the given time.
func (r *GenericRepositoryImpl[T]) PurgeDeleted(before time.Time) (int64, error) {
	db, err := r.session.writeHandle()
	if err != nil {
		return 0, err
	}
	result := db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(new(T))
	return result.RowsAffected, result.Error
}

func (r *GenericRepositoryImpl[T]) namedQuery(name string) (query.Named, error) {
	var entity T
	if querier, ok := any(entity).(namedQuerier); ok {
		if named, ok := querier.NamedQueries()[name]; ok {
			return named, nil
		}
	}
	return query.Named{}, fmt.Errorf("%w: %q", ErrUnknownNamedQuery, name)
}

func (r *GenericRepositoryImpl[T]) table(db *gorm.DB) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return stmt.Schema.Table
}
