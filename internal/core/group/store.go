// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"gorm.io/gorm"

	"github.com/taibuivan/grouproster/internal/platform/store"
)

// # Group Data Access

// Repository is the data access contract for groups.
type Repository = store.Repository[Entity]

// NewGormRepository constructs the PostgreSQL backed group store.
func NewGormRepository(db *gorm.DB) *store.GormRepository[Entity, *Entity] {
	return store.NewGormRepository[Entity](db)
}

// NewMemoryRepository constructs a process-local group store.
func NewMemoryRepository() *store.MemoryRepository[Entity, *Entity] {
	return store.NewMemoryRepository[Entity]()
}
