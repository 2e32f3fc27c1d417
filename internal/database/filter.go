// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package database

import (
	"go.mongodb.org/mongo-driver/bson"
)

// MovieFilter is the shared filter state applied to every dashboard panel.
// A single filter value drives the KPI, trend, genre, discussion and search
// queries so all panels describe the same slice of the library.
type MovieFilter struct {
	// YearMin and YearMax bound the release year, inclusive on both ends.
	YearMin int
	YearMax int
	// MinRating is the minimum IMDb rating, 0 meaning no restriction.
	MinRating float64
	// Genres restricts to movies carrying at least one of these genres.
	// Empty means no genre restriction.
	Genres []string
}

// matchStage builds the $match document shared by all panel pipelines.
//
// Documents with a missing or non-numeric year are excluded by the range
// operators, and documents with a missing or non-numeric imdb.rating are
// excluded by the $type guard. This mirrors how comparison operators treat
// mixed-type fields and keeps averages honest.
func (f MovieFilter) matchStage() bson.D {
	match := bson.D{
		{Key: "year", Value: bson.D{
			{Key: "$gte", Value: f.YearMin},
			{Key: "$lte", Value: f.YearMax},
		}},
		{Key: "imdb.rating", Value: bson.D{
			{Key: "$gte", Value: f.MinRating},
			{Key: "$type", Value: "number"},
		}},
	}

	if len(f.Genres) > 0 {
		match = append(match, bson.E{Key: "genres", Value: bson.D{
			{Key: "$in", Value: f.Genres},
		}})
	}

	return match
}
