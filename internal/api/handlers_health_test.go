// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealth_Healthy(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	response := decodeResponse(t, w)
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object data, got %T", response.Data)
	}
	if data["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", data["status"])
	}
	if data["database_connected"] != true {
		t.Errorf("Expected database_connected true, got %v", data["database_connected"])
	}
	if uptime, ok := data["uptime_seconds"].(float64); !ok || uptime <= 0 {
		t.Errorf("Expected positive uptime, got %v", data["uptime_seconds"])
	}
}

func TestHealth_DegradedWhenStoreUnreachable(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{pingErr: errors.New("server selection timeout")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	// Degraded health is still a 200; readiness is the gate
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	response := decodeResponse(t, w)
	data := response.Data.(map[string]interface{})
	if data["status"] != "degraded" {
		t.Errorf("Expected degraded status, got %v", data["status"])
	}
	if data["database_connected"] != false {
		t.Errorf("Expected database_connected false, got %v", data["database_connected"])
	}
}

func TestHealthLive_AlwaysAlive(t *testing.T) {
	t.Parallel()

	// Liveness does not depend on the store
	handler := &Handler{startTime: time.Now()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	w := httptest.NewRecorder()

	handler.HealthLive(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestHealthReady_Ready(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	w := httptest.NewRecorder()

	handler.HealthReady(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestHealthReady_NotReadyWhenPingFails(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{pingErr: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	w := httptest.NewRecorder()

	handler.HealthReady(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}

	response := decodeResponse(t, w)
	if response.Error == nil || response.Error.Code != "SERVICE_ERROR" {
		t.Errorf("Expected SERVICE_ERROR, got %+v", response.Error)
	}
}

func TestHealthEndpoints_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	endpoints := []struct {
		name string
		fn   http.HandlerFunc
	}{
		{"health", handler.Health},
		{"live", handler.HealthLive},
		{"ready", handler.HealthReady},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/health", nil)
			w := httptest.NewRecorder()

			ep.fn(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected status 405, got %d", w.Code)
			}
		})
	}
}
