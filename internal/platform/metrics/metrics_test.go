// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grouproster/internal/platform/metrics"
)

/*
TestRecorder_LabelsByRoutePattern verifies identifiers are folded into the route pattern.
*/
func TestRecorder_LabelsByRoutePattern(t *testing.T) {
	recorder, err := metrics.NewRecorder()
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(recorder.Middleware)
	router.Delete("/api/groups/{id}", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})
	router.Handle("/metrics", recorder.Handler())

	for _, id := range []string{"1", "2", "999999"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/groups/"+id, nil))
	}

	exposition := httptest.NewRecorder()
	router.ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, exposition.Code)

	body := exposition.Body.String()
	assert.Contains(t, body, `http_requests_total{method="DELETE",route="/api/groups/{id}",status="404"} 3`)
	assert.NotContains(t, body, "999999")
	assert.Contains(t, body, "go_goroutines")
}

/*
TestRecorder_Unmatched verifies requests outside a chi router still get a label.
*/
func TestRecorder_Unmatched(t *testing.T) {
	recorder, err := metrics.NewRecorder()
	require.NoError(t, err)

	handler := recorder.Middleware(http.NotFoundHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	exposition := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, exposition.Body.String(), `route="unmatched",status="404"`)
}
