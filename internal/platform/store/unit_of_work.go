// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import "sync"

// unitOfWork tracks staged insertions and removals until they are committed.
//
// # Concurrency
//
// All methods are safe for concurrent use. The staged set belongs to a single
// repository value; [Repository.Session] hands each caller a fresh one.
type unitOfWork[T comparable, P entityPtr[T]] struct {
	mu      sync.Mutex
	added   []P
	deleted []int
}

// stageAdd queues entity for insertion. Any identifier it carries is cleared,
// since identifiers are only assigned on commit.
func (work *unitOfWork[T, P]) stageAdd(entity P) error {
	if entity == nil {
		return ErrNilEntity
	}
	entity.SetID(0)

	work.mu.Lock()
	defer work.mu.Unlock()

	work.added = append(work.added, entity)
	return nil
}

/*
stageDelete queues entity for removal.

Matching rules, in order:
 1. A staged addition that is the same pointer or structurally equal is unstaged.
 2. A persisted entity (ID > 0) is queued for deletion by identifier.
*/
func (work *unitOfWork[T, P]) stageDelete(entity P) error {
	if entity == nil {
		return ErrNilEntity
	}

	work.mu.Lock()
	defer work.mu.Unlock()

	for index, staged := range work.added {
		if staged == entity || *staged == *entity {
			work.added = append(work.added[:index:index], work.added[index+1:]...)
			return nil
		}
	}

	id := entity.GetID()
	if id < 1 {
		return ErrNotTracked
	}

	for _, queued := range work.deleted {
		if queued == id {
			return nil
		}
	}
	work.deleted = append(work.deleted, id)
	return nil
}

// overlay applies the staged changes on top of a committed snapshot.
func (work *unitOfWork[T, P]) overlay(committed []P) []P {
	work.mu.Lock()
	defer work.mu.Unlock()

	result := make([]P, 0, len(committed)+len(work.added))
	for _, entity := range committed {
		if !work.isDeleted(entity.GetID()) {
			result = append(result, entity)
		}
	}

	return append(result, work.added...)
}

// hides reports whether id is staged for deletion.
func (work *unitOfWork[T, P]) hides(id int) bool {
	work.mu.Lock()
	defer work.mu.Unlock()

	return work.isDeleted(id)
}

/*
commit hands the staged changes to apply and clears them afterwards.

The lock is held for the whole call so concurrent staging waits for the commit.
When apply fails, identifiers of the staged additions are reset to 0.
*/
func (work *unitOfWork[T, P]) commit(apply func(added []P, deleted []int) error) error {
	work.mu.Lock()
	defer work.mu.Unlock()

	if len(work.added) == 0 && len(work.deleted) == 0 {
		return nil
	}

	added, deleted := work.added, work.deleted
	work.added, work.deleted = nil, nil

	if err := apply(added, deleted); err != nil {
		for _, entity := range added {
			entity.SetID(0)
		}
		return err
	}

	return nil
}

// isDeleted must be called with mu held.
func (work *unitOfWork[T, P]) isDeleted(id int) bool {
	for _, queued := range work.deleted {
		if queued == id {
			return true
		}
	}
	return false
}
