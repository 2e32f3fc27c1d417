// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package models

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryKPIs holds the four headline metrics of the dashboard.
//
// Counts are global (unfiltered) collection cardinalities. AvgRating averages
// only documents whose imdb.rating field is numeric and defaults to 0 when no
// such document exists (e.g. an empty store). Missing users or comments
// collections degrade to a count of 0, never an error.
type LibraryKPIs struct {
	MovieCount   int64   `json:"movie_count"`
	UserCount    int64   `json:"user_count"`
	CommentCount int64   `json:"comment_count"`
	AvgRating    float64 `json:"avg_rating"`
}

// TrendPoint is one entry of the rating-trend series: the average rating and
// movie count for a single release year. The series is ordered ascending by
// year and contains no duplicate years (year is the group key).
type TrendPoint struct {
	Year       int32   `bson:"_id" json:"year"`
	AvgRating  float64 `bson:"avgRating" json:"avg_rating"`
	MovieCount int64   `bson:"movieCount" json:"movie_count"`
}

// GenreStat is one row of the genre performance breakdown. A movie with N
// genres contributes one row per genre, so MovieCount summed across genres
// may exceed the number of distinct movies.
type GenreStat struct {
	Genre      string  `bson:"_id" json:"genre"`
	AvgRating  float64 `bson:"avgRating" json:"avg_rating"`
	MovieCount int64   `bson:"movieCount" json:"movie_count"`
}

// DiscussedMovie is one row of the most-discussed ranking: a movie joined to
// the count of comments referencing it. Movies with zero comments keep a
// CommentCount of 0 rather than being dropped from the ranking.
type DiscussedMovie struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Year         *int32             `bson:"year,omitempty" json:"year,omitempty"`
	IMDB         IMDB               `bson:"imdb,omitempty" json:"imdb"`
	CommentCount int64              `bson:"comment_count" json:"comment_count"`
	Genres       []string           `bson:"genres,omitempty" json:"genres,omitempty"`
}

// GenreCount pairs a genre name with the number of movies carrying it.
// Used by the filter-options endpoint to populate the genre selector.
type GenreCount struct {
	Genre string `bson:"_id" json:"genre"`
	Count int64  `bson:"count" json:"count"`
}

// FilterOptions describes the data-derived bounds the presentation layer uses
// to construct a valid filter state: the numeric year range present in the
// store and the most common genres.
type FilterOptions struct {
	YearMin int32        `json:"year_min"`
	YearMax int32        `json:"year_max"`
	Genres  []GenreCount `json:"genres"`
}

// Genre result views. The aggregation returns a single set ranked descending
// by movie count; the alternative orderings used by the charts are re-sorts
// of that same set, not separate queries.

// SortGenresByRatingAsc reorders genre stats ascending by average rating.
// Ties keep their count-descending order (stable sort).
func SortGenresByRatingAsc(stats []GenreStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgRating < stats[j].AvgRating
	})
}

// SortGenresByCountAsc reorders genre stats ascending by movie count.
func SortGenresByCountAsc(stats []GenreStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].MovieCount < stats[j].MovieCount
	})
}
