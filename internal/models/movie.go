// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IMDB holds the nested imdb sub-document of a movie. Only the rating is
// consumed. The source data is loosely typed: rating may be absent or stored
// as a non-numeric value, so it is modeled as an optional float and every
// query restricts to numeric ratings before reading it.
type IMDB struct {
	Rating *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}

// MovieSummary is the projected movie record returned by title search.
//
// Fields mirror the projection used by the search query: title, year, genres,
// imdb.rating, and plot. Year is optional for the same reason as the rating —
// some documents carry a missing or mistyped year. Documents that pass the
// shared filter predicate always have numeric year and rating, so decoding
// into typed optionals cannot fail for filtered results.
type MovieSummary struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Year   *int32             `bson:"year,omitempty" json:"year,omitempty"`
	Genres []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	IMDB   IMDB               `bson:"imdb,omitempty" json:"imdb"`
	Plot   string             `bson:"plot,omitempty" json:"plot,omitempty"`
}
