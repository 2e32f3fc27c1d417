// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/kinolens/kinolens/internal/database"
	"github.com/kinolens/kinolens/internal/models"
)

// LibraryKPIs handles KPI summary requests.
// The headline counters are library-wide and unaffected by the panel
// filter, matching the summary strip above the filtered panels.
func (h *Handler) LibraryKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Store not available", nil)
		return
	}

	start := time.Now()
	kpis, err := h.store.GetLibraryKPIs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load library KPIs", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   kpis,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// RatingTrend handles rating-trend panel requests.
// One point per release year within the filter, ascending.
func (h *Handler) RatingTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewPanelQueryExecutor(h)
	executor.ExecuteFiltered(w, r, "RatingTrend",
		func(ctx context.Context, filter database.MovieFilter) (interface{}, error) {
			return h.store.GetRatingTrend(ctx, filter)
		})
}

// genreSortParams validates the optional presentation re-sort of the
// genre panel. All orderings are views of the same query result.
type genreSortParams struct {
	Sort string `validate:"omitempty,oneof=count_desc count_asc rating_asc"`
}

// GenrePerformance handles genre panel requests.
// The store returns the full set ranked by movie count descending; the
// optional sort parameter reorders that same result in memory rather
// than issuing a second query.
func (h *Handler) GenrePerformance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	params := genreSortParams{Sort: r.URL.Query().Get("sort")}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	executor := NewPanelQueryExecutor(h)
	executor.ExecuteFiltered(w, r, "GenrePerformance",
		func(ctx context.Context, filter database.MovieFilter) (interface{}, error) {
			stats, err := h.store.GetGenrePerformance(ctx, filter)
			if err != nil {
				return nil, err
			}
			switch params.Sort {
			case "rating_asc":
				models.SortGenresByRatingAsc(stats)
			case "count_asc":
				models.SortGenresByCountAsc(stats)
			}
			return stats, nil
		})
}

// MostDiscussed handles discussion-ranking panel requests.
// Movies within the filter ranked by comment count, most discussed first.
func (h *Handler) MostDiscussed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewPanelQueryExecutor(h)
	executor.ExecuteFiltered(w, r, "MostDiscussed",
		func(ctx context.Context, filter database.MovieFilter) (interface{}, error) {
			return h.store.GetMostDiscussed(ctx, filter, h.config.API.DiscussedLimit)
		})
}
