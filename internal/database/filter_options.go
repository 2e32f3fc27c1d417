// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kinolens/kinolens/internal/metrics"
	"github.com/kinolens/kinolens/internal/models"
)

// Fallback year bounds used when the store holds no numerically-yeared
// movies, so filter controls always have a usable range.
const (
	defaultYearMin = 1900
	defaultYearMax = 2025
)

// GetFilterOptions derives the data-driven bounds for the dashboard filter
// controls: the min/max release year present in the library and the most
// common genres (top genreLimit by movie count).
func (db *DB) GetFilterOptions(ctx context.Context, genreLimit int) (*models.FilterOptions, error) {
	yearMin, yearMax, err := db.yearBounds(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := db.topGenres(ctx, genreLimit)
	if err != nil {
		return nil, err
	}

	return &models.FilterOptions{
		YearMin: yearMin,
		YearMax: yearMax,
		Genres:  genres,
	}, nil
}

// yearBounds returns the numeric year range present in the movies
// collection, falling back to defaults when none exists.
func (db *DB) yearBounds(ctx context.Context) (int32, int32, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "year", Value: bson.D{{Key: "$type", Value: "number"}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "minYear", Value: bson.D{{Key: "$min", Value: "$year"}}},
			{Key: "maxYear", Value: bson.D{{Key: "$max", Value: "$year"}}},
		}}},
	}

	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, pipeline)
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate year bounds: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		MinYear *int32 `bson:"minYear"`
		MaxYear *int32 `bson:"maxYear"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, 0, fmt.Errorf("failed to decode year bounds: %w", err)
		}
	}
	if err := cur.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to read year bounds cursor: %w", err)
	}

	if row.MinYear == nil || row.MaxYear == nil {
		return defaultYearMin, defaultYearMax, nil
	}
	return *row.MinYear, *row.MaxYear, nil
}

// topGenres returns the most common genres by movie count.
func (db *DB) topGenres(ctx context.Context, limit int) ([]models.GenreCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$genres"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: nil}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, pipeline)
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate genre options: %w", err)
	}
	defer cur.Close(ctx)

	genres := []models.GenreCount{}
	for cur.Next(ctx) {
		var genre models.GenreCount
		if err := cur.Decode(&genre); err != nil {
			return nil, fmt.Errorf("failed to decode genre option: %w", err)
		}
		genres = append(genres, genre)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genre options cursor: %w", err)
	}

	return genres, nil
}
