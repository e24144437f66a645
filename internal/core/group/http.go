// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package group provides the HTTP interface for the group roster.

# Routing Strategy

  - Discovery: Listing and lookups by name or country (GET /groups).
  - Mutation: Registration and removal by identifier (POST, DELETE).

The handler translates between the REST layer and the [Catalog] domain.
*/
package group

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/grouproster/internal/platform/apperr"
	"github.com/taibuivan/grouproster/internal/platform/constants"
	requestutil "github.com/taibuivan/grouproster/internal/platform/request"
	"github.com/taibuivan/grouproster/internal/platform/respond"
	"github.com/taibuivan/grouproster/internal/platform/validate"
	"github.com/taibuivan/grouproster/pkg/normalize"
)

// # Handler Implementation

// Handler implements the HTTP layer for group operations.
type Handler struct {
	catalog Catalog
}

// NewHandler constructs a new group [Handler].
func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Routes returns a [chi.Router] configured with group endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Discovery
	router.Get("/", handler.listGroups)
	router.Get("/{name}", handler.getGroupByName)
	router.Get("/country/", handler.listGroupsByCountry)
	router.Get("/country/{country}", handler.listGroupsByCountry)

	// ## Mutation
	router.Post("/", handler.createGroup)
	router.Delete("/{id}", handler.deleteGroup)

	return router
}

// # Group Endpoints

/*
GET /api/groups.

Description: Retrieves every group ordered by identifier.
A trailing slash is read as a lookup by an empty name.

Response:
  - 200: []DTO: Possibly empty list
  - 400: INVALID_ARGUMENT: Empty name (GET /api/groups/)
*/
func (handler *Handler) listGroups(writer http.ResponseWriter, request *http.Request) {
	if strings.HasSuffix(request.URL.Path, "/") {
		handler.getGroupByName(writer, request)
		return
	}

	groups, err := handler.catalog.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
GET /api/groups/{name}.

Description: Retrieves the first group whose name matches exactly.

Request:
  - name: string (NFC-normalised before matching)

Response:
  - 200: DTO: Success
  - 400: INVALID_ARGUMENT: Empty name
  - 404: NOT_FOUND: No group with that name
*/
func (handler *Handler) getGroupByName(writer http.ResponseWriter, request *http.Request) {
	name := normalize.Text(requestutil.Param(request, FieldName))
	if name == "" {
		respond.Error(writer, request, apperr.InvalidArgument("Group name must not be empty"))
		return
	}

	group, err := handler.catalog.GetByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, group)
}

/*
GET /api/groups/country/{country}.

Description: Retrieves every group founded in the given country.

Response:
  - 200: []DTO: At least one group
  - 400: INVALID_ARGUMENT: Empty country
  - 404: NOT_FOUND: No group in that country
*/
func (handler *Handler) listGroupsByCountry(writer http.ResponseWriter, request *http.Request) {
	country := normalize.Text(requestutil.Param(request, FieldCountry))
	if country == "" {
		respond.Error(writer, request, apperr.InvalidArgument("Country must not be empty"))
		return
	}

	groups, err := handler.catalog.ListByCountry(request.Context(), country)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
POST /api/groups.

Description: Registers a new group. The identifier is assigned by the store.

Request (Body):
  - CreateInput JSON object

Response:
  - 200: DTO: Persisted group with its identifier
  - 400: NULL_ARGUMENT/VALIDATION_ERROR: Null or invalid body
*/
func (handler *Handler) createGroup(writer http.ResponseWriter, request *http.Request) {
	var input *CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input == nil {
		respond.Error(writer, request, apperr.NullArgument("group"))
		return
	}

	dto, err := input.toDTO(time.Now().Year())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.catalog.Create(request.Context(), &dto)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, created)
}

/*
DELETE /api/groups/{id}.

Request:
  - id: int (Positive identifier)

Response:
  - 200: Message: Success
  - 400: INVALID_ARGUMENT: Non-integer or non-positive id
  - 404: NOT_FOUND: Specified id doesn't exist
*/
func (handler *Handler) deleteGroup(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, FieldID))
	if err != nil || id < 1 {
		respond.Error(writer, request, apperr.InvalidArgument("Group id must be a positive integer"))
		return
	}

	if err := handler.catalog.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldMessage: "Group deleted"})
}

// # Input Handling

// toDTO normalises and validates the input against the current year.
func (input CreateInput) toDTO(currentYear int) (DTO, error) {
	name := normalize.Text(input.Name)
	country := normalize.Text(input.Country)

	v := &validate.Validator{}
	v.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	v.Required(FieldCountry, country).MaxLen(FieldCountry, country, MaxCountryLength)
	v.Range(FieldCreationYear, input.CreationYear, MinCreationYear, currentYear)

	if err := v.Err(); err != nil {
		return DTO{}, err
	}

	return NewDTOWithoutID(name, country, input.CreationYear), nil
}
