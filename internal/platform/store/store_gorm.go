// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taibuivan/grouproster/internal/platform/dberr"
)

// GormRepository implements [Repository] using GORM.
//
// Reads go straight to the database and are overlaid with the staged changes.
// [GormRepository.Save] replays the staged changes inside one transaction.
type GormRepository[T comparable, P entityPtr[T]] struct {
	db   *gorm.DB
	work *unitOfWork[T, P]
}

// NewGormRepository constructs a GORM backed store for model T.
func NewGormRepository[T comparable, P entityPtr[T]](db *gorm.DB) *GormRepository[T, P] {
	return &GormRepository[T, P]{db: db, work: &unitOfWork[T, P]{}}
}

// Session returns a repository sharing the database handle with its own staged set.
func (repository *GormRepository[T, P]) Session() Repository[T] {
	return NewGormRepository[T, P](repository.db)
}

// # Schema

/*
EnsureCreated creates or widens the table backing T.

Description: Runs GORM AutoMigrate for the single model. It never drops
columns and is safe to run on every startup.
*/
func (repository *GormRepository[T, P]) EnsureCreated(ctx context.Context) error {
	return dberr.Wrap(repository.db.WithContext(ctx).AutoMigrate(P(new(T))), "ensure_created")
}

// # Retrieval

// GetAll returns committed rows ordered by primary key with staged changes applied.
func (repository *GormRepository[T, P]) GetAll(ctx context.Context) ([]*T, error) {
	var rows []P
	err := repository.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Find(&rows).Error
	if err != nil {
		return nil, dberr.Wrap(err, "list_entities")
	}

	return toPointers[T](repository.work.overlay(rows)), nil
}

// GetByID retrieves a row by primary key. It returns nil, nil when the row is
// absent or staged for deletion.
func (repository *GormRepository[T, P]) GetByID(ctx context.Context, id int) (*T, error) {
	if repository.work.hides(id) {
		return nil, nil
	}

	row := P(new(T))
	err := repository.db.WithContext(ctx).First(row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_entity_by_id")
	}

	return (*T)(row), nil
}

// # Mutation

// Add stages entity for insertion.
func (repository *GormRepository[T, P]) Add(_ context.Context, entity *T) error {
	return repository.work.stageAdd(entity)
}

// Delete stages entity for removal.
func (repository *GormRepository[T, P]) Delete(_ context.Context, entity *T) error {
	return repository.work.stageDelete(entity)
}

/*
Save commits staged changes.

Description: Executes within one transaction.
1. Inserts every staged addition; GORM writes the generated key back into the entity.
2. Deletes every staged identifier in a single statement.
Rolls back completely if any stage fails.
*/
func (repository *GormRepository[T, P]) Save(ctx context.Context) error {
	return repository.work.commit(func(added []P, deleted []int) error {
		err := repository.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
			for _, entity := range added {
				if err := transaction.Create(entity).Error; err != nil {
					return err
				}
			}

			if len(deleted) > 0 {
				if err := transaction.Delete(P(new(T)), deleted).Error; err != nil {
					return err
				}
			}

			return nil
		})

		return dberr.Wrap(err, "save_entities")
	})
}
