// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store provides the generic persistence gateway used by every domain service.

A [Repository] exposes CRUD primitives over one entity type and follows the
unit-of-work model: [Repository.Add] and [Repository.Delete] only stage changes,
and [Repository.Save] commits everything staged so far in one atomic step.

# Implementations

  - [GormRepository]: GORM over PostgreSQL (production).
  - [MemoryRepository]: in-process storage with the same staging semantics.

Every repository value owns one unit of work. [Repository.Session] opens another
one over the same committed data, so concurrent callers never observe, commit or
discard each other's staged changes.
*/
package store

import (
	"context"
	"errors"
)

// # Contracts

// Entity is implemented by pointer-to-model types that carry a store-assigned
// integer identifier. An identifier of 0 means the entity is not yet persisted.
type Entity interface {
	GetID() int
	SetID(id int)
}

// entityPtr constrains P to be *T and to implement [Entity].
type entityPtr[T any] interface {
	*T
	Entity
}

// Repository defines the data access contract for a single entity type.
type Repository[T any] interface {

	/*
		GetAll returns every persisted entity plus staged additions, minus staged deletions.

		Ordering: primary key ascending; staged additions follow in staging order.
	*/
	GetAll(ctx context.Context) ([]*T, error)

	/*
		GetByID retrieves an entity by identifier.

		Returns:
		  - *T: nil when absent (this is not an error)
		  - error: Storage failures only
	*/
	GetByID(ctx context.Context, id int) (*T, error)

	// Add stages entity for insertion. Its identifier is assigned by Save.
	Add(ctx context.Context, entity *T) error

	// Delete stages the removal of entity.
	Delete(ctx context.Context, entity *T) error

	/*
		Save commits all staged changes atomically.

		On failure, nothing is committed, the staged set is discarded and identifiers
		assigned during the attempt are reset to 0.
	*/
	Save(ctx context.Context) error

	/*
		Session opens an isolated unit of work over the same committed data.

		Changes staged through the session are visible only to it, and its Save
		commits or discards exactly those changes.
	*/
	Session() Repository[T]
}

// # Errors

var (
	// ErrNilEntity is returned when a nil entity is staged.
	ErrNilEntity = errors.New("store: entity must not be nil")

	// ErrNotTracked is returned when deleting an entity that is neither staged
	// for insertion nor persisted.
	ErrNotTracked = errors.New("store: entity is neither staged nor persisted")
)
