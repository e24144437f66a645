// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package group manages the roster of music groups.

It is the single concrete domain plugged into the generic store and crud layers.

# Core Responsibility

  - Persistence: Defines the [Entity] row mapped to the "groups" table.
  - Projection: Defines the immutable [DTO] exposed to clients and the [Mapper] between both.
  - Lookup: Exposes search by name and by country on top of the generic service.

This package owns no storage logic of its own; everything flows through [store.Repository].
*/
package group

import "encoding/json"

// # Core Entities

// Entity is the persistence record of a group. An ID of 0 means not yet persisted.
type Entity struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:200;not null"`
	Country      string `gorm:"size:200;not null;index"`
	CreationYear int    `gorm:"not null"`
}

// TableName pins the table name regardless of GORM naming strategy.
func (Entity) TableName() string { return "groups" }

// GetID returns the store-assigned identifier.
func (entity *Entity) GetID() int { return entity.ID }

// SetID is called by the store when the identifier is assigned or reset.
func (entity *Entity) SetID(id int) { entity.ID = id }

// # Public Projection

/*
DTO is the immutable public view of a group.

Values are built only through [NewDTOWithID] and [NewDTOWithoutID] and compare
structurally with ==. The ID of a DTO built without one is 0 and carries no meaning;
use [DTO.HasID] before relying on it.
*/
type DTO struct {
	id           int
	name         string
	country      string
	creationYear int
}

// NewDTOWithID builds the projection of a persisted group.
func NewDTOWithID(id int, name, country string, creationYear int) DTO {
	return DTO{id: id, name: name, country: country, creationYear: creationYear}
}

// NewDTOWithoutID builds a group that has not been persisted yet.
func NewDTOWithoutID(name, country string, creationYear int) DTO {
	return DTO{name: name, country: country, creationYear: creationYear}
}

// ID returns the store-assigned identifier, or 0 when the group is not persisted.
func (dto DTO) ID() int { return dto.id }

// Name returns the group name.
func (dto DTO) Name() string { return dto.name }

// Country returns the country the group was founded in.
func (dto DTO) Country() string { return dto.country }

// CreationYear returns the year the group was founded.
func (dto DTO) CreationYear() int { return dto.creationYear }

// HasID reports whether the DTO carries a store-assigned identifier.
func (dto DTO) HasID() bool { return dto.id > 0 }

// dtoJSON is the wire shape of [DTO].
type dtoJSON struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	CreationYear int    `json:"creationYear"`
}

// MarshalJSON implements [json.Marshaler].
func (dto DTO) MarshalJSON() ([]byte, error) {
	return json.Marshal(dtoJSON{
		ID:           dto.id,
		Name:         dto.name,
		Country:      dto.country,
		CreationYear: dto.creationYear,
	})
}

// # Conversion

// toDTO projects a persisted entity.
func toDTO(entity *Entity) DTO {
	return NewDTOWithID(entity.ID, entity.Name, entity.Country, entity.CreationYear)
}

// toEntity copies the DTO fields into a fresh entity.
func toEntity(dto DTO) *Entity {
	return &Entity{
		ID:           dto.id,
		Name:         dto.name,
		Country:      dto.country,
		CreationYear: dto.creationYear,
	}
}

// # Input Model

// CreateInput is the request body accepted when registering a group.
// The same shape is read from YAML seed files.
type CreateInput struct {
	Name         string `json:"name"         yaml:"name"`
	Country      string `json:"country"      yaml:"country"`
	CreationYear int    `json:"creationYear" yaml:"creationYear"`
}

// # Field Identifiers

const (
	FieldName         = "name"
	FieldCountry      = "country"
	FieldCreationYear = "creationYear"
	FieldID           = "id"
)

// Field limits.
const (
	MaxNameLength    = 200
	MaxCountryLength = 200
	MinCreationYear  = 1
)

// ResourceName names the entity in error messages.
const ResourceName = "Group"
