// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package database

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kinolens/kinolens/internal/metrics"
	"github.com/kinolens/kinolens/internal/models"
)

// buildSearchFilter combines a case-insensitive title substring match with
// the shared panel filter. The query text is regex-escaped so user input
// is always treated literally.
func buildSearchFilter(query string, filter MovieFilter) bson.D {
	match := filter.matchStage()
	match = append(match, bson.E{Key: "title", Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(query)},
		{Key: "$options", Value: "i"},
	}})
	return match
}

// searchProjection limits search hits to the fields the result list shows.
func searchProjection() bson.D {
	return bson.D{
		{Key: "title", Value: 1},
		{Key: "year", Value: 1},
		{Key: "genres", Value: 1},
		{Key: "imdb.rating", Value: 1},
		{Key: "plot", Value: 1},
	}
}

// SearchMovies finds movies whose title contains the query text, bounded
// by the shared filter and capped at limit hits in natural order.
//
// An empty query is a no-op: it returns (nil, nil) without touching the
// store, which callers must distinguish from an executed search with zero
// matches (empty non-nil slice).
func (db *DB) SearchMovies(ctx context.Context, query string, limit int, filter MovieFilter) ([]models.MovieSummary, error) {
	if query == "" {
		return nil, nil
	}

	opts := options.Find().
		SetProjection(searchProjection()).
		SetLimit(int64(limit))

	start := time.Now()
	cur, err := db.movies().Find(ctx, buildSearchFilter(query, filter), opts)
	metrics.RecordMongoQuery("find", CollectionMovies, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	defer cur.Close(ctx)

	results := []models.MovieSummary{}
	for cur.Next(ctx) {
		var movie models.MovieSummary
		if err := cur.Decode(&movie); err != nil {
			return nil, fmt.Errorf("failed to decode search result: %w", err)
		}
		results = append(results, movie)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search cursor: %w", err)
	}

	metrics.RecordPanelQuery("title_search")
	return results, nil
}
