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

	"github.com/kinolens/kinolens/internal/models"
)

func TestSearchMovies_Success(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		searchResults: []models.MovieSummary{{Title: "Alpha"}},
	}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/movies?q=alp", nil)
	w := httptest.NewRecorder()

	handler.SearchMovies(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if store.lastQuery != "alp" {
		t.Errorf("Expected query alp, got %q", store.lastQuery)
	}
	if store.lastLimit != 20 {
		t.Errorf("Expected default limit 20, got %d", store.lastLimit)
	}

	response := decodeResponse(t, w)
	data, ok := response.Data.([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("Expected 1 result, got %v", response.Data)
	}
}

func TestSearchMovies_EmptyQueryNoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"missing q", "/api/v1/search/movies"},
		{"empty q", "/api/v1/search/movies?q="},
		{"whitespace q", "/api/v1/search/movies?q=%20%20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			handler := newTestHandler(store)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.SearchMovies(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200 for empty query, got %d", w.Code)
			}

			// The store ran a no-op search returning nil; the response
			// still carries an empty array, never null.
			response := decodeResponse(t, w)
			data, ok := response.Data.([]interface{})
			if !ok || len(data) != 0 {
				t.Errorf("Expected empty array data, got %v", response.Data)
			}
			if store.lastQuery != "" {
				t.Errorf("Expected trimmed empty query, got %q", store.lastQuery)
			}
		})
	}
}

func TestSearchMovies_LimitBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		url          string
		expectedCode int
	}{
		{"limit below min", "/api/v1/search/movies?q=alp&limit=4", http.StatusBadRequest},
		{"limit above max", "/api/v1/search/movies?q=alp&limit=101", http.StatusBadRequest},
		{"limit at min", "/api/v1/search/movies?q=alp&limit=5", http.StatusOK},
		{"limit at max", "/api/v1/search/movies?q=alp&limit=100", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&fakeStore{})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.SearchMovies(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d", tt.expectedCode, w.Code)
			}

			if tt.expectedCode == http.StatusBadRequest {
				response := decodeResponse(t, w)
				if response.Error == nil || response.Error.Code != "VALIDATION_ERROR" {
					t.Errorf("Expected VALIDATION_ERROR, got %+v", response.Error)
				}
			}
		})
	}
}

func TestSearchMovies_FilterRidesAlong(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/search/movies?q=alp&year_min=1990&year_max=2000&min_rating=8&genres=Drama", nil)
	w := httptest.NewRecorder()

	handler.SearchMovies(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.lastFilter.YearMin != 1990 || store.lastFilter.YearMax != 2000 {
		t.Errorf("Expected year range [1990,2000], got [%d,%d]", store.lastFilter.YearMin, store.lastFilter.YearMax)
	}
	if store.lastFilter.MinRating != 8 {
		t.Errorf("Expected min rating 8, got %f", store.lastFilter.MinRating)
	}
}

func TestSearchMovies_DatabaseError(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("regex too long")}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/movies?q=alp", nil)
	w := httptest.NewRecorder()

	handler.SearchMovies(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	response := decodeResponse(t, w)
	if response.Error == nil || response.Error.Code != "DATABASE_ERROR" {
		t.Errorf("Expected DATABASE_ERROR, got %+v", response.Error)
	}
}

func TestSearchMovies_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/search/movies?q=alp", nil)
	w := httptest.NewRecorder()

	handler.SearchMovies(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
