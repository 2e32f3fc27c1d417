// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/kinolens/kinolens/internal/models"
)

// searchParams validates the search request. An omitted limit falls back
// to the configured default before validation, so only explicit
// out-of-range values are rejected.
type searchParams struct {
	Query string `validate:"max=256"`
	Limit int    `validate:"min=5,max=100"`
}

// SearchMovies handles title search requests.
//
// An empty or whitespace-only q parameter is a no-op: the store is not
// queried and the response carries an empty result set. That state is
// distinct from an executed search with zero matches only on the server
// side; both render as an empty list.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Store not available", nil)
		return
	}

	params := searchParams{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: getIntParam(r, "limit", h.config.API.SearchLimitDefault),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	filter, apiErr := h.buildFilter(r)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	results, err := h.store.SearchMovies(r.Context(), params.Query, params.Limit, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to search movies", err)
		return
	}
	if results == nil {
		results = []models.MovieSummary{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   results,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
