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

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	tests := []struct {
		name        string
		url         string
		expectError bool
		checkFilter func(t *testing.T, yearMin, yearMax int, minRating float64, genres []string)
	}{
		{
			name: "defaults cover the full library",
			url:  "/panel",
			checkFilter: func(t *testing.T, yearMin, yearMax int, minRating float64, genres []string) {
				if yearMin != 1900 || yearMax != 2025 {
					t.Errorf("Expected default range [1900,2025], got [%d,%d]", yearMin, yearMax)
				}
				if minRating != 0 {
					t.Errorf("Expected default min rating 0, got %f", minRating)
				}
				if genres != nil {
					t.Errorf("Expected no genre restriction, got %v", genres)
				}
			},
		},
		{
			name: "explicit parameters",
			url:  "/panel?year_min=1980&year_max=1989&min_rating=6.5&genres=Horror",
			checkFilter: func(t *testing.T, yearMin, yearMax int, minRating float64, genres []string) {
				if yearMin != 1980 || yearMax != 1989 {
					t.Errorf("Expected range [1980,1989], got [%d,%d]", yearMin, yearMax)
				}
				if minRating != 6.5 {
					t.Errorf("Expected min rating 6.5, got %f", minRating)
				}
				if len(genres) != 1 || genres[0] != "Horror" {
					t.Errorf("Expected [Horror], got %v", genres)
				}
			},
		},
		{
			name: "genres trimmed and empties dropped",
			url:  "/panel?genres=Drama,%20Comedy%20,,",
			checkFilter: func(t *testing.T, yearMin, yearMax int, minRating float64, genres []string) {
				if len(genres) != 2 || genres[0] != "Drama" || genres[1] != "Comedy" {
					t.Errorf("Expected [Drama Comedy], got %v", genres)
				}
			},
		},
		{
			name:        "inverted year range rejected",
			url:         "/panel?year_min=2000&year_max=1990",
			expectError: true,
		},
		{
			name:        "rating above scale rejected",
			url:         "/panel?min_rating=10.5",
			expectError: true,
		},
		{
			name:        "negative rating rejected",
			url:         "/panel?min_rating=-1",
			expectError: true,
		},
		{
			name: "equal year bounds accepted",
			url:  "/panel?year_min=1994&year_max=1994",
			checkFilter: func(t *testing.T, yearMin, yearMax int, minRating float64, genres []string) {
				if yearMin != 1994 || yearMax != 1994 {
					t.Errorf("Expected [1994,1994], got [%d,%d]", yearMin, yearMax)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			filter, apiErr := handler.buildFilter(req)

			if tt.expectError {
				if apiErr == nil {
					t.Fatal("Expected validation error")
				}
				if apiErr.Code != "VALIDATION_ERROR" {
					t.Errorf("Expected VALIDATION_ERROR, got %s", apiErr.Code)
				}
				return
			}

			if apiErr != nil {
				t.Fatalf("Unexpected validation error: %+v", apiErr)
			}
			if tt.checkFilter != nil {
				tt.checkFilter(t, filter.YearMin, filter.YearMax, filter.MinRating, filter.Genres)
			}
		})
	}
}

func TestFilterOptions_Success(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		options: &models.FilterOptions{
			YearMin: 1994,
			YearMax: 2001,
			Genres:  []models.GenreCount{{Genre: "Drama", Count: 2}},
		},
	}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters/options", nil)
	w := httptest.NewRecorder()

	handler.FilterOptions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.lastLimit != 50 {
		t.Errorf("Expected configured genre limit 50, got %d", store.lastLimit)
	}

	response := decodeResponse(t, w)
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object data, got %T", response.Data)
	}
	if data["year_min"] != float64(1994) || data["year_max"] != float64(2001) {
		t.Errorf("Expected year bounds [1994,2001], got %v/%v", data["year_min"], data["year_max"])
	}
}

func TestFilterOptions_DatabaseError(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("listCollections failed")}
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters/options", nil)
	w := httptest.NewRecorder()

	handler.FilterOptions(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
}

func TestFilterOptions_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/filters/options", nil)
	w := httptest.NewRecorder()

	handler.FilterOptions(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
