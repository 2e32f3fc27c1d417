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

// buildRatingTrendPipeline constructs the year-bucketed trend pipeline:
// shared match, group by release year, sort ascending.
func buildRatingTrendPipeline(filter MovieFilter) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.matchStage()}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$year"},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$imdb.rating"}}},
			{Key: "movieCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// GetRatingTrend returns one point per release year within the filter,
// ordered ascending by year. Grouping on the year guarantees the series
// has no duplicate x values. An empty slice is a valid result when the
// filter matches nothing.
func (db *DB) GetRatingTrend(ctx context.Context, filter MovieFilter) ([]models.TrendPoint, error) {
	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, buildRatingTrendPipeline(filter))
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating trend: %w", err)
	}
	defer cur.Close(ctx)

	points := []models.TrendPoint{}
	for cur.Next(ctx) {
		var point models.TrendPoint
		if err := cur.Decode(&point); err != nil {
			return nil, fmt.Errorf("failed to decode trend point: %w", err)
		}
		points = append(points, point)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trend cursor: %w", err)
	}

	metrics.RecordPanelQuery("rating_trend")
	return points, nil
}
