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

// GetLibraryKPIs returns the headline counters for the KPI summary panel:
// total movies, users and comments plus the library-wide average rating.
//
// The users and comments collections are optional. A partial restore that
// lacks them yields a count of 0 rather than an error, so the panel always
// renders. The average considers only documents whose imdb.rating is a
// number; an empty or rating-free library averages to 0.
func (db *DB) GetLibraryKPIs(ctx context.Context) (*models.LibraryKPIs, error) {
	start := time.Now()

	movieCount, err := db.movies().CountDocuments(ctx, bson.D{})
	if err != nil {
		metrics.RecordMongoQuery("count", CollectionMovies, time.Since(start), err)
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}

	userCount, err := db.countOptionalCollection(ctx, CollectionUsers)
	if err != nil {
		return nil, err
	}

	commentCount, err := db.countOptionalCollection(ctx, CollectionComments)
	if err != nil {
		return nil, err
	}

	avgRating, err := db.averageRating(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordMongoQuery("kpis", CollectionMovies, time.Since(start), nil)

	return &models.LibraryKPIs{
		MovieCount:   movieCount,
		UserCount:    userCount,
		CommentCount: commentCount,
		AvgRating:    avgRating,
	}, nil
}

// countOptionalCollection counts documents in a collection that may not
// exist, treating a missing collection as zero.
func (db *DB) countOptionalCollection(ctx context.Context, name string) (int64, error) {
	exists, err := db.hasCollection(ctx, name)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	start := time.Now()
	count, err := db.db.Collection(name).CountDocuments(ctx, bson.D{})
	metrics.RecordMongoQuery("count", name, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return count, nil
}

// averageRating computes the mean imdb.rating across all movies whose
// rating is stored as a number.
func (db *DB) averageRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "imdb.rating", Value: bson.D{{Key: "$type", Value: "number"}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$imdb.rating"}}},
		}}},
	}

	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, pipeline)
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate average rating: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		AvgRating float64 `bson:"avgRating"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("failed to decode average rating: %w", err)
		}
	}
	if err := cur.Err(); err != nil {
		return 0, fmt.Errorf("failed to read average rating cursor: %w", err)
	}

	return row.AvgRating, nil
}
