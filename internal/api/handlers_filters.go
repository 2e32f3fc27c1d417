// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"net/http"
	"time"

	"github.com/kinolens/kinolens/internal/database"
	"github.com/kinolens/kinolens/internal/models"
)

// filterParams carries the shared filter query parameters through
// validation. The year range must be ordered and the rating must sit on
// the IMDb scale.
type filterParams struct {
	YearMin   int     `validate:"gte=0"`
	YearMax   int     `validate:"gtefield=YearMin"`
	MinRating float64 `validate:"gte=0,lte=10"`
}

// buildFilter parses the shared filter state from query parameters:
// year_min, year_max, min_rating and genres (comma-separated). Bounds
// default to the full library range so an unfiltered dashboard sees
// everything.
func (h *Handler) buildFilter(r *http.Request) (database.MovieFilter, *models.APIError) {
	params := filterParams{
		YearMin:   getIntParam(r, "year_min", 1900),
		YearMax:   getIntParam(r, "year_max", 2025),
		MinRating: getFloatParam(r, "min_rating", 0),
	}

	if apiErr := validateRequest(&params); apiErr != nil {
		return database.MovieFilter{}, apiErr
	}

	return database.MovieFilter{
		YearMin:   params.YearMin,
		YearMax:   params.YearMax,
		MinRating: params.MinRating,
		Genres:    parseCommaSeparated(r.URL.Query().Get("genres")),
	}, nil
}

// FilterOptions handles filter-control metadata requests.
// It returns the data-derived year bounds and the most common genres so
// the presentation layer can build its controls from what the library
// actually contains.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Store not available", nil)
		return
	}

	start := time.Now()
	options, err := h.store.GetFilterOptions(r.Context(), h.config.API.GenreOptionsLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load filter options", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   options,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
