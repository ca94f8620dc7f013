// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	m := newHTTPMetrics()

	router := chi.NewRouter()
	router.Use(m.withMetrics)
	router.Delete("/delete_todo/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"1", "2", "3"} {
		serve(router, httptest.NewRequest(http.MethodDelete, "/delete_todo/"+id, nil))
	}
	serve(router, httptest.NewRequest(http.MethodGet, "/random/path", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodDelete, "/delete_todo/{id}", "202")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestHTTPMetrics_ExtraCollectors(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "extra_total", Help: "extra"})
	extra.Inc()

	m := newHTTPMetrics(extra, nil)

	rr := serve(m.handler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "extra_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}
