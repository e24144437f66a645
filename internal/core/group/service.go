// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"log/slog"

	"github.com/taibuivan/grouproster/internal/platform/apperr"
	"github.com/taibuivan/grouproster/internal/platform/crud"
)

// Mapper converts between [DTO] and [Entity] field by field.
var Mapper = crud.Mapper[DTO, Entity]{
	ToDTO:    toDTO,
	ToEntity: toEntity,
}

// # Contracts

// Finder is the read side consumed by the HTTP layer.
type Finder interface {
	List(ctx context.Context) ([]DTO, error)
	GetByName(ctx context.Context, name string) (DTO, error)
	ListByCountry(ctx context.Context, country string) ([]DTO, error)
}

// Writer is the mutation side consumed by the HTTP layer and the seeder.
type Writer interface {
	Create(ctx context.Context, dto *DTO) (DTO, error)
	Delete(ctx context.Context, id int) error
}

// Catalog combines [Finder] and [Writer].
type Catalog interface {
	Finder
	Writer
}

// # Service Layer

// Service exposes the group roster on top of the generic [crud.Service].
type Service struct {
	*crud.Service[DTO, Entity]
	logger *slog.Logger
}

// NewService constructs a new group [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		Service: crud.NewService(repository, Mapper),
		logger:  logger,
	}
}

// List returns every group ordered by identifier.
func (service *Service) List(ctx context.Context) ([]DTO, error) {
	return service.GetAll(ctx)
}

/*
GetByName retrieves the first group whose name matches exactly.

Returns:
  - DTO: The matching group
  - error: InvalidArgument for an empty name, NotFound when nothing matches
*/
func (service *Service) GetByName(ctx context.Context, name string) (DTO, error) {
	if name == "" {
		return DTO{}, apperr.InvalidArgument("Group name must not be empty")
	}

	dto, found, err := service.FindOne(ctx, func(candidate DTO) bool {
		return candidate.Name() == name
	})
	if err != nil {
		return DTO{}, err
	}
	if !found {
		return DTO{}, apperr.NotFound(ResourceName)
	}

	return dto, nil
}

/*
ListByCountry returns every group founded in country, in identifier order.

Returns:
  - []DTO: At least one group
  - error: InvalidArgument for an empty country, NotFound when none match
*/
func (service *Service) ListByCountry(ctx context.Context, country string) ([]DTO, error) {
	if country == "" {
		return nil, apperr.InvalidArgument("Country must not be empty")
	}

	groups, err := service.Find(ctx, func(candidate DTO) bool {
		return candidate.Country() == country
	})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperr.NotFoundf("No groups found for country %q", country)
	}

	return groups, nil
}

// Create persists dto and returns it with its assigned identifier.
func (service *Service) Create(ctx context.Context, dto *DTO) (DTO, error) {
	created, err := service.Add(ctx, dto)
	if err != nil {
		return DTO{}, err
	}

	service.logger.InfoContext(ctx, "group_added",
		slog.Int("group_id", created.ID()),
		slog.String("country", created.Country()),
	)

	return created, nil
}

// Delete removes the group with the given identifier.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.DeleteByID(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "group_deleted", slog.Int("group_id", id))
	return nil
}
