// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"slices"
	"sync"
)

// memoryTable holds the committed rows shared by a repository and its sessions.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
}

// MemoryRepository implements [Repository] on top of a process-local map.
//
// Committed rows are stored by value; readers receive copies, so mutating a
// returned entity never alters the stored row.
type MemoryRepository[T comparable, P entityPtr[T]] struct {
	table *memoryTable[T]
	work  *unitOfWork[T, P]
}

// NewMemoryRepository constructs an empty in-memory store.
func NewMemoryRepository[T comparable, P entityPtr[T]]() *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		table: &memoryTable[T]{rows: make(map[int]T)},
		work:  &unitOfWork[T, P]{},
	}
}

// Session returns a repository over the same rows with its own staged set.
func (repository *MemoryRepository[T, P]) Session() Repository[T] {
	return &MemoryRepository[T, P]{table: repository.table, work: &unitOfWork[T, P]{}}
}

// # Retrieval

// GetAll returns committed rows ordered by identifier with staged changes applied.
func (repository *MemoryRepository[T, P]) GetAll(_ context.Context) ([]*T, error) {
	table := repository.table

	table.mu.RLock()
	ids := make([]int, 0, len(table.rows))
	for id := range table.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	committed := make([]P, 0, len(ids))
	for _, id := range ids {
		row := table.rows[id]
		committed = append(committed, P(&row))
	}
	table.mu.RUnlock()

	return toPointers[T](repository.work.overlay(committed)), nil
}

// GetByID returns a copy of the committed row, or nil when absent or staged for deletion.
func (repository *MemoryRepository[T, P]) GetByID(_ context.Context, id int) (*T, error) {
	if repository.work.hides(id) {
		return nil, nil
	}

	repository.table.mu.RLock()
	defer repository.table.mu.RUnlock()

	row, ok := repository.table.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// # Mutation

// Add stages entity for insertion.
func (repository *MemoryRepository[T, P]) Add(_ context.Context, entity *T) error {
	return repository.work.stageAdd(entity)
}

// Delete stages entity for removal.
func (repository *MemoryRepository[T, P]) Delete(_ context.Context, entity *T) error {
	return repository.work.stageDelete(entity)
}

// Save assigns sequential identifiers to staged additions and applies removals.
func (repository *MemoryRepository[T, P]) Save(ctx context.Context) error {
	return repository.work.commit(func(added []P, deleted []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		table := repository.table
		table.mu.Lock()
		defer table.mu.Unlock()

		for _, entity := range added {
			table.nextID++
			entity.SetID(table.nextID)
			table.rows[table.nextID] = *entity
		}

		for _, id := range deleted {
			delete(table.rows, id)
		}

		return nil
	})
}

// toPointers converts a constrained pointer slice back to plain *T values.
func toPointers[T any, P entityPtr[T]](input []P) []*T {
	result := make([]*T, len(input))
	for i, entity := range input {
		result[i] = (*T)(entity)
	}
	return result
}
