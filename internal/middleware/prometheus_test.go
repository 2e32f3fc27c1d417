// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrometheusMetrics_PassesThrough(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/kpis", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if !handlerCalled {
		t.Error("Expected wrapped handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestPrometheusMetrics_CapturesErrorStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/genres", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 to pass through, got %d", rec.Code)
	}
}

func TestMetricsResponseWriter_DefaultStatus(t *testing.T) {
	// A handler that writes a body without calling WriteHeader
	// should be recorded as 200.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected implicit 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("Expected body passthrough, got %q", rec.Body.String())
	}
}
