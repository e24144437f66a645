// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grouproster/internal/platform/apperr"
	"github.com/taibuivan/grouproster/internal/platform/crud"
	"github.com/taibuivan/grouproster/internal/platform/store"
)

// # Fixtures

type artistRow struct {
	ID    int
	Name  string
	Genre string
}

func (a *artistRow) GetID() int   { return a.ID }
func (a *artistRow) SetID(id int) { a.ID = id }

type artistView struct {
	ID    int
	Name  string
	Genre string
}

var artistMapper = crud.Mapper[artistView, artistRow]{
	ToDTO: func(entity *artistRow) artistView {
		return artistView{ID: entity.ID, Name: entity.Name, Genre: entity.Genre}
	},
	ToEntity: func(dto artistView) *artistRow {
		return &artistRow{ID: dto.ID, Name: dto.Name, Genre: dto.Genre}
	},
}

// spyRepository records every call and can be told to fail.
type spyRepository struct {
	store.Repository[artistRow]
	calls   []string
	saveErr error
	listErr error
}

func (spy *spyRepository) GetAll(ctx context.Context) ([]*artistRow, error) {
	spy.calls = append(spy.calls, "GetAll")
	if spy.listErr != nil {
		return nil, spy.listErr
	}
	return spy.Repository.GetAll(ctx)
}

func (spy *spyRepository) GetByID(ctx context.Context, id int) (*artistRow, error) {
	spy.calls = append(spy.calls, "GetByID")
	return spy.Repository.GetByID(ctx, id)
}

func (spy *spyRepository) Add(ctx context.Context, entity *artistRow) error {
	spy.calls = append(spy.calls, "Add")
	return spy.Repository.Add(ctx, entity)
}

func (spy *spyRepository) Delete(ctx context.Context, entity *artistRow) error {
	spy.calls = append(spy.calls, "Delete")
	return spy.Repository.Delete(ctx, entity)
}

func (spy *spyRepository) Save(ctx context.Context) error {
	spy.calls = append(spy.calls, "Save")
	if spy.saveErr != nil {
		return spy.saveErr
	}
	return spy.Repository.Save(ctx)
}

// Session wraps the inner session so its calls land in the same log.
func (spy *spyRepository) Session() store.Repository[artistRow] {
	spy.calls = append(spy.calls, "Session")
	return &spySession{Repository: spy.Repository.Session(), spy: spy}
}

type spySession struct {
	store.Repository[artistRow]
	spy *spyRepository
}

func (session *spySession) Add(ctx context.Context, entity *artistRow) error {
	session.spy.calls = append(session.spy.calls, "Add")
	return session.Repository.Add(ctx, entity)
}

func (session *spySession) Delete(ctx context.Context, entity *artistRow) error {
	session.spy.calls = append(session.spy.calls, "Delete")
	return session.Repository.Delete(ctx, entity)
}

func (session *spySession) Save(ctx context.Context) error {
	session.spy.calls = append(session.spy.calls, "Save")
	if session.spy.saveErr != nil {
		return session.spy.saveErr
	}
	return session.Repository.Save(ctx)
}

func newService(t *testing.T, seed ...artistView) (*crud.Service[artistView, artistRow], *spyRepository) {
	t.Helper()

	spy := &spyRepository{Repository: store.NewMemoryRepository[artistRow]()}
	service := crud.NewService(spy, artistMapper)

	for _, dto := range seed {
		_, err := service.Add(context.Background(), &dto)
		require.NoError(t, err)
	}
	spy.calls = nil

	return service, spy
}

var (
	bowie   = artistView{Name: "David Bowie", Genre: "rock"}
	bjork   = artistView{Name: "Björk", Genre: "electronic"}
	prince  = artistView{Name: "Prince", Genre: "funk"}
	kraftwk = artistView{Name: "Kraftwerk", Genre: "electronic"}
)

// # Retrieval

/*
TestService_GetAll verifies projection and ordering.
*/
func TestService_GetAll(t *testing.T) {
	service, _ := newService(t, bowie, bjork)

	all, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []artistView{
		{ID: 1, Name: "David Bowie", Genre: "rock"},
		{ID: 2, Name: "Björk", Genre: "electronic"},
	}, all)

	empty, _ := newService(t)
	none, err := empty.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

/*
TestService_GetByID covers the fail-fast argument check and absence handling.
*/
func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		service, _ := newService(t, bowie)

		dto, err := service.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, artistView{ID: 1, Name: "David Bowie", Genre: "rock"}, dto)
	})

	for _, id := range []int{0, -1} {
		t.Run("non_positive_id", func(t *testing.T) {
			service, spy := newService(t, bowie)

			_, err := service.GetByID(ctx, id)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
			assert.Empty(t, spy.calls)
		})
	}

	t.Run("absent_is_not_found", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

/*
TestService_Find verifies Find returns exactly the ordered subset of GetAll.
*/
func TestService_Find(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, bowie, bjork, prince, kraftwk)

	isElectronic := func(dto artistView) bool { return dto.Genre == "electronic" }

	all, err := service.GetAll(ctx)
	require.NoError(t, err)

	var expected []artistView
	for _, dto := range all {
		if isElectronic(dto) {
			expected = append(expected, dto)
		}
	}

	found, err := service.Find(ctx, isElectronic)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
	assert.Equal(t, []string{"Björk", "Kraftwerk"}, []string{found[0].Name, found[1].Name})

	none, err := service.Find(ctx, func(artistView) bool { return false })
	require.NoError(t, err)
	assert.Empty(t, none)
}

/*
TestService_FindOne verifies the first match wins and no match is not an error.
*/
func TestService_FindOne(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, bowie, bjork, prince, kraftwk)

	dto, found, err := service.FindOne(ctx, func(dto artistView) bool { return dto.Genre == "electronic" })
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, artistView{ID: 2, Name: "Björk", Genre: "electronic"}, dto)

	dto, found, err = service.FindOne(ctx, func(dto artistView) bool { return dto.Genre == "jazz" })
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, dto)
}

/*
TestService_PredicateSeesProjection ensures filtering runs on the DTO, not the entity.
*/
func TestService_PredicateSeesProjection(t *testing.T) {
	repository := store.NewMemoryRepository[artistRow]()
	projecting := crud.Mapper[string, artistRow]{
		ToDTO:    func(entity *artistRow) string { return entity.Name + " (" + entity.Genre + ")" },
		ToEntity: func(string) *artistRow { return &artistRow{} },
	}
	service := crud.NewService(repository, projecting)

	ctx := context.Background()
	require.NoError(t, repository.Add(ctx, &artistRow{Name: "Prince", Genre: "funk"}))
	require.NoError(t, repository.Save(ctx))

	found, err := service.Find(ctx, func(label string) bool { return label == "Prince (funk)" })
	require.NoError(t, err)
	assert.Equal(t, []string{"Prince (funk)"}, found)
}

/*
TestService_ListFailurePropagates ensures storage errors are never swallowed.
*/
func TestService_ListFailurePropagates(t *testing.T) {
	service, spy := newService(t)
	spy.listErr = apperr.Internal(errors.New("connection reset"))

	_, err := service.GetAll(context.Background())
	assert.ErrorIs(t, err, spy.listErr)

	_, err = service.Find(context.Background(), func(artistView) bool { return true })
	assert.ErrorIs(t, err, spy.listErr)

	_, _, err = service.FindOne(context.Background(), func(artistView) bool { return true })
	assert.ErrorIs(t, err, spy.listErr)
}

// # Mutation

/*
TestService_Add covers the round trip and argument checks.
*/
func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("round_trip_assigns_id", func(t *testing.T) {
		service, spy := newService(t, bowie)

		added, err := service.Add(ctx, &prince)
		require.NoError(t, err)
		assert.Equal(t, []string{"Session", "Add", "Save"}, spy.calls)

		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		last := all[len(all)-1]
		assert.Equal(t, added, last)
		assert.Positive(t, last.ID)
		assert.Equal(t, prince.Name, last.Name)
		assert.Equal(t, prince.Genre, last.Genre)
	})

	t.Run("supplied_id_is_ignored", func(t *testing.T) {
		service, _ := newService(t, bowie)

		added, err := service.Add(ctx, &artistView{ID: 77, Name: "Sade", Genre: "soul"})
		require.NoError(t, err)
		assert.Equal(t, 2, added.ID)

		_, err = service.GetByID(ctx, 77)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("nil_dto", func(t *testing.T) {
		service, spy := newService(t)

		_, err := service.Add(ctx, nil)
		assert.ErrorIs(t, err, apperr.ErrNullArgument)
		assert.Empty(t, spy.calls)
	})

	t.Run("save_failure_propagates", func(t *testing.T) {
		service, spy := newService(t)
		spy.saveErr = apperr.Internal(errors.New("unique violation"))

		_, err := service.Add(ctx, &bjork)
		assert.ErrorIs(t, err, spy.saveErr)
	})

	t.Run("failed_add_leaves_concurrent_session", func(t *testing.T) {
		service, spy := newService(t)

		pending := spy.Repository.Session()
		staged := &artistRow{Name: "Portishead", Genre: "trip hop"}
		require.NoError(t, pending.Add(ctx, staged))

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := service.Add(canceled, &bjork)
		require.ErrorIs(t, err, context.Canceled)

		none, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, none)

		require.NoError(t, pending.Save(ctx))
		assert.Positive(t, staged.ID)

		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []artistView{{ID: staged.ID, Name: "Portishead", Genre: "trip hop"}}, all)
	})
}

/*
TestService_DeleteByID covers every failure mode and the happy path.
*/
func TestService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		service, spy := newService(t, bowie, bjork)

		require.NoError(t, service.DeleteByID(ctx, 1))
		assert.Equal(t, []string{"GetByID", "Session", "Delete", "Save"}, spy.calls)

		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []artistView{{ID: 2, Name: "Björk", Genre: "electronic"}}, all)
	})

	t.Run("missing", func(t *testing.T) {
		service, spy := newService(t, bowie)

		err := service.DeleteByID(ctx, 999999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.EqualError(t, err, crud.MsgIDDoesNotExist)
		assert.Equal(t, []string{"GetByID"}, spy.calls)
	})

	for _, id := range []int{0, -5} {
		t.Run("non_positive_id", func(t *testing.T) {
			service, spy := newService(t, bowie)

			err := service.DeleteByID(ctx, id)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
			assert.Empty(t, spy.calls)
		})
	}
}
