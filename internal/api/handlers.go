// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"context"
	"time"

	"github.com/kinolens/kinolens/internal/config"
	"github.com/kinolens/kinolens/internal/database"
	"github.com/kinolens/kinolens/internal/models"
)

// Store is the data access surface the handlers depend on. *database.DB
// satisfies it; tests substitute a fake to exercise handlers without a
// live MongoDB.
type Store interface {
	GetLibraryKPIs(ctx context.Context) (*models.LibraryKPIs, error)
	GetRatingTrend(ctx context.Context, filter database.MovieFilter) ([]models.TrendPoint, error)
	GetGenrePerformance(ctx context.Context, filter database.MovieFilter) ([]models.GenreStat, error)
	GetMostDiscussed(ctx context.Context, filter database.MovieFilter, limit int) ([]models.DiscussedMovie, error)
	SearchMovies(ctx context.Context, query string, limit int, filter database.MovieFilter) ([]models.MovieSummary, error)
	GetFilterOptions(ctx context.Context, genreLimit int) (*models.FilterOptions, error)
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, Store interface (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_analytics.go: Panel endpoints (KPIs, trend, genres, discussed)
//   - handlers_search.go: Title search endpoint
//   - handlers_filters.go: Filter parsing and the filter-options endpoint
//   - handlers_health.go: Health and probe endpoints
type Handler struct {
	store     Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler. The store is constructed once in
// main and injected here; handlers never open their own connections.
func NewHandler(store Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
