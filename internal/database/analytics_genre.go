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

// buildGenrePerformancePipeline constructs the genre fan-out pipeline.
// $unwind duplicates each movie once per genre, so a Drama/Comedy title
// contributes to both buckets. Null genre buckets (from movies with no
// genres array) are dropped after grouping.
func buildGenrePerformancePipeline(filter MovieFilter) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.matchStage()}},
		bson.D{{Key: "$unwind", Value: "$genres"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres"},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$imdb.rating"}}},
			{Key: "movieCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: nil}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "movieCount", Value: -1}}}},
	}
}

// GetGenrePerformance returns per-genre aggregate ratings and counts for
// the filtered library, ranked by movie count descending. The full set is
// returned; alternative orderings are presentation concerns applied to
// this same result, never a second query.
func (db *DB) GetGenrePerformance(ctx context.Context, filter MovieFilter) ([]models.GenreStat, error) {
	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, buildGenrePerformancePipeline(filter))
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate genre performance: %w", err)
	}
	defer cur.Close(ctx)

	stats := []models.GenreStat{}
	for cur.Next(ctx) {
		var stat models.GenreStat
		if err := cur.Decode(&stat); err != nil {
			return nil, fmt.Errorf("failed to decode genre stat: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genre cursor: %w", err)
	}

	metrics.RecordPanelQuery("genre_performance")
	return stats, nil
}
