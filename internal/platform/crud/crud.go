// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package crud provides the generic service layer sitting between HTTP handlers and
a [store.Repository].

It converts persistence entities into public DTOs, validates arguments before any
I/O and offers predicate-based search evaluated against the DTO projection.

# Extension Point

A domain plugs in by supplying a [Mapper]: two pure functions converting between
its entity and its DTO. Nothing else is entity specific.
*/
package crud

import (
	"context"

	"github.com/taibuivan/grouproster/internal/platform/apperr"
	"github.com/taibuivan/grouproster/internal/platform/store"
	"github.com/taibuivan/grouproster/pkg/slice"
)

// MsgIDDoesNotExist is the failure message for lookups of an absent identifier.
const MsgIDDoesNotExist = "Specified id doesn't exist"

// Mapper holds the conversion hooks between a DTO D and an entity E.
//
// Both functions must be pure and side-effect free.
type Mapper[D any, E any] struct {
	ToDTO    func(entity *E) D
	ToEntity func(dto D) *E
}

// # Service Layer

// Service implements validation, projection and predicate search over a repository.
//
// Reads go through the repository it was built with. Every mutation opens its own
// [store.Repository.Session], so concurrent calls commit independently.
type Service[D any, E any] struct {
	repository store.Repository[E]
	mapper     Mapper[D, E]
}

// NewService constructs a [Service].
func NewService[D any, E any](repository store.Repository[E], mapper Mapper[D, E]) *Service[D, E] {
	return &Service[D, E]{
		repository: repository,
		mapper:     mapper,
	}
}

// # Retrieval

// GetAll projects every entity to its DTO, preserving repository order.
func (service *Service[D, E]) GetAll(ctx context.Context) ([]D, error) {
	entities, err := service.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return slice.Map(entities, service.mapper.ToDTO), nil
}

/*
GetByID retrieves one entity and projects it.

Returns:
  - D: The projected DTO
  - error: InvalidArgument when id < 1 (no repository access), NotFound when absent
*/
func (service *Service[D, E]) GetByID(ctx context.Context, id int) (D, error) {
	var zero D

	if id < 1 {
		return zero, apperr.InvalidArgument("Specified id less than 1")
	}

	entity, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if entity == nil {
		return zero, apperr.NotFoundf(MsgIDDoesNotExist)
	}

	return service.mapper.ToDTO(entity), nil
}

// Find returns every DTO satisfying predicate, in repository order.
//
// The predicate sees the projected DTO, never the raw entity.
func (service *Service[D, E]) Find(ctx context.Context, predicate func(D) bool) ([]D, error) {
	all, err := service.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return slice.Filter(all, predicate), nil
}

// FindOne returns the first DTO satisfying predicate. The boolean is false when
// nothing matches, which is not an error.
func (service *Service[D, E]) FindOne(ctx context.Context, predicate func(D) bool) (D, bool, error) {
	all, err := service.GetAll(ctx)
	if err != nil {
		var zero D
		return zero, false, err
	}

	dto, found := slice.First(all, predicate)
	return dto, found, nil
}

// # Mutation

/*
Add converts dto to an entity, stages it in a fresh session and commits.

Any identifier carried by dto is ignored; the store assigns a new one.

Returns:
  - D: The persisted projection carrying the assigned identifier
  - error: NullArgument when dto is nil, otherwise persistence failures
*/
func (service *Service[D, E]) Add(ctx context.Context, dto *D) (D, error) {
	var zero D

	if dto == nil {
		return zero, apperr.NullArgument("dto")
	}

	entity := service.mapper.ToEntity(*dto)
	session := service.repository.Session()
	if err := session.Add(ctx, entity); err != nil {
		return zero, err
	}

	if err := session.Save(ctx); err != nil {
		return zero, err
	}

	return service.mapper.ToDTO(entity), nil
}

/*
DeleteByID removes the entity with the given identifier.

Returns:
  - error: InvalidArgument when id < 1, NotFound ("doesn't exist") when absent,
    otherwise persistence failures
*/
func (service *Service[D, E]) DeleteByID(ctx context.Context, id int) error {
	if id < 1 {
		return apperr.InvalidArgument(MsgIDDoesNotExist)
	}

	entity, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return apperr.NotFoundf(MsgIDDoesNotExist)
	}

	session := service.repository.Session()
	if err := session.Delete(ctx, entity); err != nil {
		return err
	}

	return session.Save(ctx)
}
