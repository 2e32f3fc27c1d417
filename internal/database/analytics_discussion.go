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

// buildMostDiscussedPipeline constructs the comment-join ranking pipeline.
//
// The $lookup is an outer join: a movie with no comments keeps an empty
// joined array and therefore a comment_count of 0, so it competes in the
// ranking rather than disappearing. The shared filter is applied after the
// join; it references movie fields only, so relocating it before the
// $lookup would be a pure optimization with identical results.
func buildMostDiscussedPipeline(filter MovieFilter, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionComments},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "movie_id"},
			{Key: "as", Value: "movie_comments"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "comment_count", Value: bson.D{{Key: "$size", Value: "$movie_comments"}}},
		}}},
		bson.D{{Key: "$match", Value: filter.matchStage()}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "comment_count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "title", Value: 1},
			{Key: "year", Value: 1},
			{Key: "imdb.rating", Value: 1},
			{Key: "comment_count", Value: 1},
			{Key: "genres", Value: 1},
		}}},
	}
}

// GetMostDiscussed ranks the filtered movies by how many comments each has
// attracted and returns the top entries, most discussed first.
//
// When the comments collection is absent or empty every movie would tie at
// zero, so the join is skipped entirely and an empty result is returned.
func (db *DB) GetMostDiscussed(ctx context.Context, filter MovieFilter, limit int) ([]models.DiscussedMovie, error) {
	exists, err := db.hasCollection(ctx, CollectionComments)
	if err != nil {
		return nil, err
	}
	if exists {
		start := time.Now()
		n, err := db.db.Collection(CollectionComments).EstimatedDocumentCount(ctx)
		metrics.RecordMongoQuery("count", CollectionComments, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("failed to count comments: %w", err)
		}
		exists = n > 0
	}
	if !exists {
		return []models.DiscussedMovie{}, nil
	}

	start := time.Now()
	cur, err := db.movies().Aggregate(ctx, buildMostDiscussedPipeline(filter, limit))
	metrics.RecordMongoQuery("aggregate", CollectionMovies, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate most discussed: %w", err)
	}
	defer cur.Close(ctx)

	discussed := []models.DiscussedMovie{}
	for cur.Next(ctx) {
		var movie models.DiscussedMovie
		if err := cur.Decode(&movie); err != nil {
			return nil, fmt.Errorf("failed to decode discussed movie: %w", err)
		}
		discussed = append(discussed, movie)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read discussion cursor: %w", err)
	}

	metrics.RecordPanelQuery("most_discussed")
	return discussed, nil
}
