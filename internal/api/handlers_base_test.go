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

// fakeStore is a scriptable Store implementation for handler tests.
// Each field overrides one method; unset methods return empty results.
// lastFilter records the filter a panel query received.
type fakeStore struct {
	kpis          *models.LibraryKPIs
	trend         []models.TrendPoint
	genres        []models.GenreStat
	discussed     []models.DiscussedMovie
	searchResults []models.MovieSummary
	options       *models.FilterOptions
	err           error
	pingErr       error

	lastFilter      database.MovieFilter
	lastQuery       string
	lastLimit       int
	searchCallCount int
}

func (f *fakeStore) GetLibraryKPIs(ctx context.Context) (*models.LibraryKPIs, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.kpis == nil {
		return &models.LibraryKPIs{}, nil
	}
	return f.kpis, nil
}

func (f *fakeStore) GetRatingTrend(ctx context.Context, filter database.MovieFilter) ([]models.TrendPoint, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.trend == nil {
		return []models.TrendPoint{}, nil
	}
	return f.trend, nil
}

func (f *fakeStore) GetGenrePerformance(ctx context.Context, filter database.MovieFilter) ([]models.GenreStat, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.genres == nil {
		return []models.GenreStat{}, nil
	}
	return f.genres, nil
}

func (f *fakeStore) GetMostDiscussed(ctx context.Context, filter database.MovieFilter, limit int) ([]models.DiscussedMovie, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if f.discussed == nil {
		return []models.DiscussedMovie{}, nil
	}
	return f.discussed, nil
}

func (f *fakeStore) SearchMovies(ctx context.Context, query string, limit int, filter database.MovieFilter) ([]models.MovieSummary, error) {
	f.searchCallCount++
	f.lastQuery = query
	f.lastLimit = limit
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.searchResults, nil
}

func (f *fakeStore) GetFilterOptions(ctx context.Context, genreLimit int) (*models.FilterOptions, error) {
	f.lastLimit = genreLimit
	if f.err != nil {
		return nil, f.err
	}
	if f.options == nil {
		return &models.FilterOptions{YearMin: 1900, YearMax: 2025}, nil
	}
	return f.options, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

// testConfig returns a config with the default API limits.
func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			SearchLimitDefault: 20,
			SearchLimitMin:     5,
			SearchLimitMax:     100,
			DiscussedLimit:     15,
			GenreOptionsLimit:  50,
		},
	}
}

// newTestHandler builds a handler over the given fake store.
func newTestHandler(store *fakeStore) *Handler {
	h := NewHandler(store, testConfig())
	h.startTime = time.Now().Add(-time.Minute)
	return h
}
